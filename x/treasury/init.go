package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial treasury setup from genesis and save it to
// the database. The configuration is mandatory. Without it no treasury
// operation can be executed.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, "treasury", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	pool := TreasuryPool{
		Metadata: &weave.Metadata{Schema: 1},
	}
	if _, err := NewPoolBucket().Put(kv, poolKey, &pool); err != nil {
		return errors.Wrap(err, "cannot store pool")
	}

	var setup struct {
		Allocations []struct {
			Name        string        `json:"name"`
			Destination weave.Address `json:"destination"`
			RatioPpm    uint32        `json:"ratio_ppm"`
			Active      bool          `json:"active"`
		} `json:"allocations"`
		Distributors []struct {
			Name     string        `json:"name"`
			Source   weave.Address `json:"source"`
			FeeType  string        `json:"fee_type"`
			Active   bool          `json:"active"`
			RatioPpm uint32        `json:"ratio_ppm"`
		} `json:"distributors"`
	}
	if err := opts.ReadOptions("treasury", &setup); err != nil {
		return errors.Wrap(err, "cannot load treasury")
	}

	var ratioSum int64
	allocations := NewAllocationBucket()
	for i, a := range setup.Allocations {
		if a.Active {
			ratioSum += int64(a.RatioPpm)
		}
		if ratioSum > wholeRatio {
			return errors.Wrap(errors.ErrInput, "active allocation ratios exceed 100%")
		}
		key, err := allocationSeq.NextVal(kv)
		if err != nil {
			return errors.Wrap(err, "cannot acquire ID")
		}
		alloc := FeeAllocation{
			Metadata:    &weave.Metadata{Schema: 1},
			Name:        a.Name,
			Destination: a.Destination,
			RatioPpm:    a.RatioPpm,
			Active:      a.Active,
		}
		if _, err := allocations.Put(kv, key, &alloc); err != nil {
			return errors.Wrapf(err, "cannot store #%d allocation", i)
		}
	}

	distributors := NewDistributorBucket()
	for i, d := range setup.Distributors {
		key, err := distributorSeq.NextVal(kv)
		if err != nil {
			return errors.Wrap(err, "cannot acquire ID")
		}
		dist := FeeDistributor{
			Metadata: &weave.Metadata{Schema: 1},
			Name:     d.Name,
			Source:   d.Source,
			FeeType:  d.FeeType,
			Active:   d.Active,
			RatioPpm: d.RatioPpm,
		}
		if _, err := distributors.Put(kv, key, &dist); err != nil {
			return errors.Wrapf(err, "cannot store #%d distributor", i)
		}
	}
	return nil
}
