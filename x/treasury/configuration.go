package treasury

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(c.Owner) == 0 {
		return errors.Wrap(errors.ErrState, "owner missing")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner address")
	}
	if !coin.IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", c.Ticker)
	}
	// Collaborator contracts are optional. Discounts cannot be applied
	// until at least one of policy or pool contract is configured.
	if len(c.PolicyContract) != 0 {
		if err := c.PolicyContract.Validate(); err != nil {
			return errors.Wrap(err, "policy contract address")
		}
	}
	if len(c.PoolContract) != 0 {
		if err := c.PoolContract.Validate(); err != nil {
			return errors.Wrap(err, "pool contract address")
		}
	}
	if len(c.InsuranceContract) != 0 {
		if err := c.InsuranceContract.Validate(); err != nil {
			return errors.Wrap(err, "insurance contract address")
		}
	}
	if len(c.GovernanceContract) != 0 {
		if err := c.GovernanceContract.Validate(); err != nil {
			return errors.Wrap(err, "governance contract address")
		}
	}
	return nil
}

// loadConf returns the treasury configuration. A missing configuration means
// the treasury was never initialized via the genesis.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "treasury", &conf); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrap(errors.ErrState, "treasury not initialized")
		}
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
