package treasury

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestHandlers(t *testing.T) {
	admin := weavetest.NewCondition()
	admin2 := weavetest.NewCondition()
	policy := weavetest.NewCondition()
	source := weavetest.NewCondition()
	stranger := weavetest.NewCondition()

	devAddr := weavetest.NewCondition().Address()
	insAddr := weavetest.NewCondition().Address()
	govAddr := weavetest.NewCondition().Address()
	comAddr := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	cashBucket := cash.NewBucket()
	ctrl := cash.NewController(cashBucket)
	RegisterRoutes(rt, auth, ctrl)

	treasuryAddr := TreasuryAccount()

	cases := map[string]struct {
		// skipInit runs the actions against a store without a
		// treasury configuration or pool.
		skipInit        bool
		prepareAccounts []account
		actions         []action
		wantAccounts    []account
	}{
		"fees are distributed proportionally": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(1000000, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    200000,
						Active:      true,
					},
					blocksize: 12,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "governance",
						Destination: govAddr,
						RatioPpm:    150000,
						Active:      true,
					},
					blocksize: 13,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "community",
						Destination: comAddr,
						RatioPpm:    300000,
						Active:      true,
					},
					blocksize: 14,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   1000000,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				{address: devAddr, coins: coin.Coins{coin.NewCoinp(350000, 0, "IOV")}},
				{address: insAddr, coins: coin.Coins{coin.NewCoinp(200000, 0, "IOV")}},
				{address: govAddr, coins: coin.Coins{coin.NewCoinp(150000, 0, "IOV")}},
				{address: comAddr, coins: coin.Coins{coin.NewCoinp(300000, 0, "IOV")}},
			},
		},
		"the undistributed remainder stays pooled": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    200000,
						Active:      true,
					},
					blocksize: 12,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				{address: devAddr, coins: coin.Coins{coin.NewCoinp(35, 0, "IOV")}},
				{address: insAddr, coins: coin.Coins{coin.NewCoinp(20, 0, "IOV")}},
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(45, 0, "IOV")}},
			},
		},
		"shares are rounded down": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(10, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    333333,
						Active:      true,
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   10,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				// 10 * 333333 / 1000000 is 3.33, rounded down.
				{address: devAddr, coins: coin.Coins{coin.NewCoinp(3, 0, "IOV")}},
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(7, 0, "IOV")}},
			},
		},
		"inactive allocations do not receive a share": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    650000,
						Active:      false,
					},
					blocksize: 12,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   1000,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				{address: devAddr, coins: coin.Coins{coin.NewCoinp(350, 0, "IOV")}},
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(650, 0, "IOV")}},
			},
		},
		"collecting requires a registered distributor": {
			prepareAccounts: []account{
				{address: stranger.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize:      10,
					wantCheckErr:   ErrNoDistributor,
					wantDeliverErr: ErrNoDistributor,
				},
			},
			wantAccounts: []account{
				{address: stranger.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
		},
		"an inactive distributor cannot collect": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   false,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize:      11,
					wantCheckErr:   ErrNoDistributor,
					wantDeliverErr: ErrNoDistributor,
				},
			},
		},
		"an empty pool cannot be distributed": {
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize:      10,
					wantCheckErr:   errors.ErrEmpty,
					wantDeliverErr: errors.ErrEmpty,
				},
			},
		},
		"only the owner can distribute": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{source},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize:      12,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
			},
			wantAccounts: []account{
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
		},
		"only the owner can register": {
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   stranger.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize:      10,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{stranger},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize:      11,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
			},
		},
		"active ratios cannot exceed the whole": {
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    700000,
						Active:      true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    400000,
						Active:      true,
					},
					blocksize:      11,
					wantCheckErr:   errors.ErrInput,
					wantDeliverErr: errors.ErrInput,
				},
				// An inactive allocation does not count towards the sum.
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    400000,
						Active:      false,
					},
					blocksize: 12,
				},
				// Activating it must run the same headroom check.
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateAllocationMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						AllocationId: weavetest.SequenceID(2),
						Toggle:       Toggle_ACTIVE,
					},
					blocksize:      13,
					wantCheckErr:   errors.ErrInput,
					wantDeliverErr: errors.ErrInput,
				},
				// Deactivating the first frees enough headroom.
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateAllocationMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						AllocationId: weavetest.SequenceID(1),
						Toggle:       Toggle_INACTIVE,
					},
					blocksize: 14,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateAllocationMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						AllocationId: weavetest.SequenceID(2),
						Toggle:       Toggle_ACTIVE,
					},
					blocksize: 15,
				},
			},
		},
		"an allocation update keeps fields that are not set": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(1000000, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 11,
				},
				// Only the destination changes, ratio and active
				// state must survive.
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateAllocationMsg{
						Metadata:     &weave.Metadata{Schema: 1},
						AllocationId: weavetest.SequenceID(1),
						Destination:  insAddr,
						Toggle:       Toggle_UNSET,
					},
					blocksize: 12,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   1000000,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				{address: insAddr, coins: coin.Coins{coin.NewCoinp(350000, 0, "IOV")}},
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(650000, 0, "IOV")}},
			},
		},
		"a distribution batch has a limited capacity": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "IOV")}},
			},
			actions: append(
				registerAllocations(admin, devAddr, batchCapacity+1),
				action{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 30,
				},
				action{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   1000,
						FeeType:  "swap",
					},
					blocksize: 31,
				},
				action{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize:      32,
					wantDeliverErr: ErrBatchCapacity,
				},
			),
			wantAccounts: []account{
				// The capacity check runs before any transfer.
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(1000, 0, "IOV")}},
			},
		},
		"ownership can be transferred": {
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateConfigurationMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Patch: &Configuration{
							Metadata: &weave.Metadata{Schema: 1},
							Owner:    admin2.Address(),
						},
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize:      11,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{admin2},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 12,
				},
			},
		},
		"operations require an initialized treasury": {
			skipInit: true,
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize:      10,
					wantCheckErr:   errors.ErrState,
					wantDeliverErr: errors.ErrState,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize:      11,
					wantCheckErr:   errors.ErrState,
					wantDeliverErr: errors.ErrState,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize:      12,
					wantCheckErr:   errors.ErrState,
					wantDeliverErr: errors.ErrState,
				},
			},
		},
		"a zero ratio allocation receives no share": {
			prepareAccounts: []account{
				{address: source.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "IOV")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{admin},
					msg: &CreateDistributorMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Name:     "dex swap fees",
						Source:   source.Address(),
						FeeType:  "swap",
						Active:   true,
					},
					blocksize: 10,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "development",
						Destination: devAddr,
						RatioPpm:    350000,
						Active:      true,
					},
					blocksize: 11,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &CreateAllocationMsg{
						Metadata:    &weave.Metadata{Schema: 1},
						Name:        "insurance",
						Destination: insAddr,
						RatioPpm:    0,
						Active:      true,
					},
					blocksize: 12,
				},
				{
					conditions: []weave.Condition{source},
					msg: &CollectFeeMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Amount:   100,
						FeeType:  "swap",
					},
					blocksize: 20,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &DistributeFeesMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					blocksize: 21,
				},
			},
			wantAccounts: []account{
				// The insurance account receives nothing, its cut of
				// zero stays with the pool.
				{address: devAddr, coins: coin.Coins{coin.NewCoinp(35, 0, "IOV")}},
				{address: treasuryAddr, coins: coin.Coins{coin.NewCoinp(65, 0, "IOV")}},
			},
		},
		"discounts are set by the owner only": {
			actions: []action{
				{
					conditions: []weave.Condition{policy},
					msg: &SetDiscountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Account:  stranger.Address(),
						RatioPpm: 250000,
						Duration: 100,
						Active:   true,
					},
					blocksize:      10,
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &SetDiscountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Account:  stranger.Address(),
						RatioPpm: 250000,
						Duration: 100,
						Active:   true,
					},
					blocksize: 11,
				},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()

			migration.MustInitPkg(db, "cash", "treasury")

			if !tc.skipInit {
				initTreasury(t, db, admin.Address(), policy.Address())
			}

			for _, a := range tc.prepareAccounts {
				for _, c := range a.coins {
					if err := ctrl.CoinMint(db, a.address, *c); err != nil {
						t.Fatalf("cannot issue %q to %s: %s", c, a.address, err)
					}
				}
			}

			for i, a := range tc.actions {
				cache := db.CacheWrap()
				if _, err := rt.Check(a.ctx(), cache, a.tx()); !a.wantCheckErr.Is(err) {
					t.Logf("want: %+v", a.wantCheckErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d check (%T)", i, a.msg)
				}
				cache.Discard()
				if a.wantCheckErr != nil {
					// Failed checks are causing the message to be ignored.
					continue
				}

				if _, err := rt.Deliver(a.ctx(), db, a.tx()); !a.wantDeliverErr.Is(err) {
					t.Logf("want: %+v", a.wantDeliverErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d delivery (%T)", i, a.msg)
				}
			}

			for i, a := range tc.wantAccounts {
				coins, err := ctrl.Balance(db, a.address)
				if err != nil {
					t.Fatalf("cannot get %+v balance: %s", a, err)
				}
				if !coins.Equals(a.coins) {
					t.Logf("want: %+v", a.coins)
					t.Logf("got: %+v", coins)
					t.Errorf("unexpected coins for account #%d (%s)", i, a.address)
				}
			}
		})
	}
}

// initTreasury stores a configuration and an empty pool the way the genesis
// initializer would.
func initTreasury(t testing.TB, db weave.KVStore, owner, policyContract weave.Address) {
	t.Helper()

	conf := Configuration{
		Metadata:       &weave.Metadata{Schema: 1},
		Owner:          owner,
		Ticker:         "IOV",
		PolicyContract: policyContract,
	}
	if err := gconf.Save(db, "treasury", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	pool := TreasuryPool{Metadata: &weave.Metadata{Schema: 1}}
	if _, err := NewPoolBucket().Put(db, poolKey, &pool); err != nil {
		t.Fatalf("cannot store pool: %s", err)
	}
}

// registerAllocations returns create actions for n active allocations, each
// with a ratio small enough that together they never exceed the whole.
func registerAllocations(admin weave.Condition, dest weave.Address, n int) []action {
	acts := make([]action, 0, n)
	for i := 0; i < n; i++ {
		acts = append(acts, action{
			conditions: []weave.Condition{admin},
			msg: &CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        fmt.Sprintf("allocation %d", i+1),
				Destination: dest,
				RatioPpm:    50000,
				Active:      true,
			},
			blocksize: int64(10 + i),
		})
	}
	return acts
}

func TestApplyDiscount(t *testing.T) {
	admin := weavetest.NewCondition()
	policy := weavetest.NewCondition()
	client := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	cases := map[string]struct {
		// skipSet leaves the account without any discount.
		skipSet       bool
		setRatio      uint32
		setDuration   int64
		setActive     bool
		applyHeight   int64
		applyBy       weave.Condition
		fee           int64
		wantErr       *errors.Error
		wantEffective int64
	}{
		"an active discount reduces the fee": {
			setRatio:      250000,
			setDuration:   100,
			setActive:     true,
			applyHeight:   50,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 750,
		},
		"the discount cut is rounded down": {
			setRatio:    333333,
			setDuration: 100,
			setActive:   true,
			applyHeight: 50,
			applyBy:     policy,
			fee:         10,
			// The cut of 3.33 rounds down to 3.
			wantEffective: 7,
		},
		"a zero ratio discount leaves the fee unchanged": {
			setRatio:      0,
			setDuration:   100,
			setActive:     true,
			applyHeight:   50,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 1000,
		},
		"an account without a discount pays the full fee": {
			skipSet:       true,
			applyHeight:   50,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 1000,
		},
		"an inactive discount pays the full fee": {
			setRatio:      250000,
			setDuration:   100,
			setActive:     false,
			applyHeight:   50,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 1000,
		},
		"an expired discount pays the full fee": {
			setRatio:      250000,
			setDuration:   100,
			setActive:     true,
			applyHeight:   111,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 1000,
		},
		"the discount expires exactly after its duration": {
			setRatio:    250000,
			setDuration: 100,
			setActive:   true,
			// Set at height 10, the discount is still valid at 110.
			applyHeight:   110,
			applyBy:       policy,
			fee:           1000,
			wantEffective: 750,
		},
		"only a configured contract can apply a discount": {
			setRatio:    250000,
			setDuration: 100,
			setActive:   true,
			applyHeight: 50,
			applyBy:     admin,
			fee:         1000,
			wantErr:     errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "treasury")
			initTreasury(t, db, admin.Address(), policy.Address())

			if !tc.skipSet {
				set := action{
					conditions: []weave.Condition{admin},
					msg: &SetDiscountMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Account:  client,
						RatioPpm: tc.setRatio,
						Duration: tc.setDuration,
						Active:   tc.setActive,
					},
					blocksize: 10,
				}
				if _, err := rt.Deliver(set.ctx(), db, set.tx()); err != nil {
					t.Fatalf("cannot set discount: %s", err)
				}
			}

			apply := action{
				conditions: []weave.Condition{tc.applyBy},
				msg: &ApplyDiscountMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Account:  client,
					Fee:      tc.fee,
				},
				blocksize: tc.applyHeight,
			}
			res, err := rt.Deliver(apply.ctx(), db, apply.tx())
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				return
			}
			if n := len(res.Data); n != 8 {
				t.Fatalf("want 8 bytes of result data, got %d", n)
			}
			if got := int64(binary.BigEndian.Uint64(res.Data)); got != tc.wantEffective {
				t.Fatalf("want effective fee %d, got %d", tc.wantEffective, got)
			}
		})
	}
}

func TestDiscountLazyExpiry(t *testing.T) {
	admin := weavetest.NewCondition()
	policy := weavetest.NewCondition()
	client := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "treasury")
	initTreasury(t, db, admin.Address(), policy.Address())

	set := action{
		conditions: []weave.Condition{admin},
		msg: &SetDiscountMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Account:  client,
			RatioPpm: 250000,
			Duration: 100,
			Active:   true,
		},
		blocksize: 10,
	}
	if _, err := rt.Deliver(set.ctx(), db, set.tx()); err != nil {
		t.Fatalf("cannot set discount: %s", err)
	}

	apply := action{
		conditions: []weave.Condition{policy},
		msg: &ApplyDiscountMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Account:  client,
			Fee:      1000,
		},
		blocksize: 200,
	}
	if _, err := rt.Deliver(apply.ctx(), db, apply.tx()); err != nil {
		t.Fatalf("cannot apply discount: %s", err)
	}

	// The first use past the expiration must persist the deactivation.
	var disc FeeDiscount
	if err := NewDiscountBucket().One(db, client, &disc); err != nil {
		t.Fatalf("cannot get discount: %s", err)
	}
	if disc.Active {
		t.Fatal("discount still active after expiration")
	}
}

// TestSerializedAllocationUpdate delivers an update message that went through
// a marshal and unmarshal cycle, the way any message submitted by a client
// does. Fields the client did not set must keep their stored value even
// though serialization erases the difference between unset and zero.
func TestSerializedAllocationUpdate(t *testing.T) {
	admin := weavetest.NewCondition()
	policy := weavetest.NewCondition()
	devAddr := weavetest.NewCondition().Address()
	insAddr := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "treasury")
	initTreasury(t, db, admin.Address(), policy.Address())

	create := action{
		conditions: []weave.Condition{admin},
		msg: &CreateAllocationMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Name:        "development",
			Destination: devAddr,
			RatioPpm:    350000,
			Active:      true,
		},
		blocksize: 10,
	}
	if _, err := rt.Deliver(create.ctx(), db, create.tx()); err != nil {
		t.Fatalf("cannot create allocation: %s", err)
	}

	raw, err := (&UpdateAllocationMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		AllocationId: weavetest.SequenceID(1),
		Destination:  insAddr,
		Toggle:       Toggle_UNSET,
	}).Marshal()
	if err != nil {
		t.Fatalf("cannot serialize message: %s", err)
	}
	var update UpdateAllocationMsg
	if err := update.Unmarshal(raw); err != nil {
		t.Fatalf("cannot deserialize message: %s", err)
	}

	patch := action{
		conditions: []weave.Condition{admin},
		msg:        &update,
		blocksize:  11,
	}
	if _, err := rt.Deliver(patch.ctx(), db, patch.tx()); err != nil {
		t.Fatalf("cannot update allocation: %s", err)
	}

	var alloc FeeAllocation
	if err := NewAllocationBucket().One(db, weavetest.SequenceID(1), &alloc); err != nil {
		t.Fatalf("cannot get allocation: %s", err)
	}
	if !alloc.Destination.Equals(insAddr) {
		t.Errorf("want destination %s, got %s", insAddr, alloc.Destination)
	}
	if alloc.RatioPpm != 350000 {
		t.Errorf("want ratio 350000, got %d", alloc.RatioPpm)
	}
	if !alloc.Active {
		t.Error("allocation no longer active")
	}
}

func TestDistributionBatchRecord(t *testing.T) {
	admin := weavetest.NewCondition()
	policy := weavetest.NewCondition()
	source := weavetest.NewCondition()
	devAddr := weavetest.NewCondition().Address()
	insAddr := weavetest.NewCondition().Address()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "cash", "treasury")
	initTreasury(t, db, admin.Address(), policy.Address())

	if err := ctrl.CoinMint(db, source.Address(), coin.NewCoin(100, 0, "IOV")); err != nil {
		t.Fatalf("cannot issue coins: %s", err)
	}

	setup := []action{
		{
			conditions: []weave.Condition{admin},
			msg: &CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   source.Address(),
				FeeType:  "swap",
				RatioPpm: 100000,
				Active:   true,
			},
			blocksize: 10,
		},
		{
			conditions: []weave.Condition{admin},
			msg: &CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: devAddr,
				RatioPpm:    350000,
				Active:      true,
			},
			blocksize: 11,
		},
		{
			conditions: []weave.Condition{admin},
			msg: &CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "insurance",
				Destination: insAddr,
				RatioPpm:    200000,
				Active:      true,
			},
			blocksize: 12,
		},
		{
			conditions: []weave.Condition{source},
			msg: &CollectFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   100,
				FeeType:  "swap",
			},
			blocksize: 20,
		},
	}
	for i, a := range setup {
		if _, err := rt.Deliver(a.ctx(), db, a.tx()); err != nil {
			t.Fatalf("action %d delivery (%T): %s", i, a.msg, err)
		}
	}

	var dist FeeDistributor
	if err := NewDistributorBucket().One(db, weavetest.SequenceID(1), &dist); err != nil {
		t.Fatalf("cannot get distributor: %s", err)
	}
	if dist.RatioPpm != 100000 {
		t.Errorf("want distributor ratio 100000, got %d", dist.RatioPpm)
	}

	distribute := action{
		conditions: []weave.Condition{admin},
		msg: &DistributeFeesMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
		blocksize: 21,
	}
	res, err := rt.Deliver(distribute.ctx(), db, distribute.tx())
	if err != nil {
		t.Fatalf("cannot distribute: %s", err)
	}

	// The delivery result carries the key of the batch record.
	var batch DistributionBatch
	if err := NewBatchBucket().One(db, res.Data, &batch); err != nil {
		t.Fatalf("cannot get batch: %s", err)
	}
	if batch.Total != 55 {
		t.Errorf("want total 55, got %d", batch.Total)
	}
	if batch.Height != 21 {
		t.Errorf("want height 21, got %d", batch.Height)
	}
	wantEntries := []*BatchEntry{
		{Allocation: weavetest.SequenceID(1), Amount: 35},
		{Allocation: weavetest.SequenceID(2), Amount: 20},
	}
	if len(batch.Entries) != len(wantEntries) {
		t.Fatalf("want %d entries, got %d", len(wantEntries), len(batch.Entries))
	}
	for i, e := range batch.Entries {
		if !bytes.Equal(e.Allocation, wantEntries[i].Allocation) {
			t.Errorf("entry %d: want allocation %x, got %x", i, wantEntries[i].Allocation, e.Allocation)
		}
		if e.Amount != wantEntries[i].Amount {
			t.Errorf("entry %d: want amount %d, got %d", i, wantEntries[i].Amount, e.Amount)
		}
	}

	// The batch entries must account for every coin that left the pool.
	var moved int64
	for _, e := range batch.Entries {
		moved += e.Amount
	}
	var pool TreasuryPool
	if err := NewPoolBucket().One(db, poolKey, &pool); err != nil {
		t.Fatalf("cannot get pool: %s", err)
	}
	if want := 100 - pool.Balance; moved != want {
		t.Errorf("entries move %d coins, pool released %d", moved, want)
	}
	if pool.TotalDistributed != 55 {
		t.Errorf("want 55 distributed, got %d", pool.TotalDistributed)
	}
}

// account represents a single account state - the coins/funds it holds.
type account struct {
	address weave.Address
	coins   coin.Coins
}

// action represents a single request call that is handled by a handler.
type action struct {
	conditions     []weave.Condition
	msg            weave.Msg
	blocksize      int64
	wantCheckErr   *errors.Error
	wantDeliverErr *errors.Error
}

func (a *action) tx() weave.Tx {
	return &weavetest.Tx{Msg: a.msg}
}

func (a *action) ctx() weave.Context {
	ctx := weave.WithHeight(context.Background(), a.blocksize)
	ctx = weave.WithChainID(ctx, "testchain-123")
	auth := &weavetest.CtxAuth{Key: "auth"}
	return auth.SetConditions(ctx, a.conditions...)
}

func TestRatioShare(t *testing.T) {
	cases := map[string]struct {
		amount int64
		ratio  uint32
		want   int64
	}{
		"zero amount": {
			amount: 0,
			ratio:  500000,
			want:   0,
		},
		"zero ratio": {
			amount: 1000,
			ratio:  0,
			want:   0,
		},
		"whole ratio": {
			amount: 1000,
			ratio:  wholeRatio,
			want:   1000,
		},
		"exact split": {
			amount: 1000000,
			ratio:  350000,
			want:   350000,
		},
		"rounded down": {
			amount: 10,
			ratio:  333333,
			want:   3,
		},
		"amount below resolution": {
			amount: 1,
			ratio:  999999,
			want:   0,
		},
		"large amount does not overflow": {
			amount: 9223372036854775807,
			ratio:  wholeRatio,
			want:   9223372036854775807,
		},
		"large amount with fraction": {
			amount: 9223372036854775807,
			ratio:  500000,
			want:   4611686018427387903,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := ratioShare(tc.amount, tc.ratio); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
