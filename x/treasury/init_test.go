package treasury

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestGenesisKey(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"treasury": {
					"metadata": {"schema": 1},
					"owner": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
					"ticker": "IOV",
					"policy_contract": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34"
				}
			},
			"treasury": {
				"allocations": [
					{"name": "development", "destination": "E94323317C46BDA2268FA3698BAF4F95B893E8C7", "ratio_ppm": 350000, "active": true},
					{"name": "community", "destination": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34", "ratio_ppm": 300000, "active": true}
				],
				"distributors": [
					{"name": "dex swap fees", "source": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34", "fee_type": "swap", "ratio_ppm": 100000, "active": true}
				]
			}
		}
	`
	addr1, _ := hex.DecodeString("E94323317C46BDA2268FA3698BAF4F95B893E8C7")
	addr2, _ := hex.DecodeString("FE5526DE08337DFEF5CF45EF3ED8C577B854DE34")

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	var conf Configuration
	if err := gconf.Load(db, "treasury", &conf); err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	if !conf.Owner.Equals(addr1) {
		t.Fatalf("unexpected owner address: %q", conf.Owner)
	}
	if conf.Ticker != "IOV" {
		t.Fatalf("unexpected ticker: %q", conf.Ticker)
	}
	if !conf.PolicyContract.Equals(addr2) {
		t.Fatalf("unexpected policy contract address: %q", conf.PolicyContract)
	}

	var pool TreasuryPool
	if err := NewPoolBucket().One(db, poolKey, &pool); err != nil {
		t.Fatalf("cannot fetch pool: %s", err)
	}
	if pool.Balance != 0 {
		t.Fatalf("want an empty pool, got balance %d", pool.Balance)
	}

	allocations := NewAllocationBucket()
	var a FeeAllocation
	if err := allocations.One(db, weavetest.SequenceID(1), &a); err != nil {
		t.Fatalf("cannot fetch allocation: %s", err)
	}
	if a.Name != "development" || a.RatioPpm != 350000 || !a.Active {
		t.Fatalf("unexpected allocation: %+v", a)
	}
	if !a.Destination.Equals(addr1) {
		t.Fatalf("unexpected destination: %q", a.Destination)
	}
	if err := allocations.One(db, weavetest.SequenceID(2), &a); err != nil {
		t.Fatalf("cannot fetch allocation: %s", err)
	}
	if a.Name != "community" || a.RatioPpm != 300000 {
		t.Fatalf("unexpected allocation: %+v", a)
	}

	var d FeeDistributor
	if err := NewDistributorBucket().One(db, weavetest.SequenceID(1), &d); err != nil {
		t.Fatalf("cannot fetch distributor: %s", err)
	}
	if d.Name != "dex swap fees" || d.FeeType != "swap" || !d.Active {
		t.Fatalf("unexpected distributor: %+v", d)
	}
	if d.RatioPpm != 100000 {
		t.Fatalf("unexpected distributor ratio: %d", d.RatioPpm)
	}
	if !d.Source.Equals(addr2) {
		t.Fatalf("unexpected source: %q", d.Source)
	}
}

func TestGenesisRejectsExcessiveRatios(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"treasury": {
					"metadata": {"schema": 1},
					"owner": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
					"ticker": "IOV"
				}
			},
			"treasury": {
				"allocations": [
					{"name": "development", "destination": "E94323317C46BDA2268FA3698BAF4F95B893E8C7", "ratio_ppm": 700000, "active": true},
					{"name": "community", "destination": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34", "ratio_ppm": 400000, "active": true}
				]
			}
		}
	`
	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "treasury")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrInput.Is(err) {
		t.Fatalf("want an input error, got %+v", err)
	}
}
