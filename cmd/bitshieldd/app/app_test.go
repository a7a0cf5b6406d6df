package app

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/marshal363/bitshield/x/treasury"
)

func TestApp(t *testing.T) {
	const chainID = "test-net-22"

	pk := crypto.GenPrivKeyEd25519()
	addr := pk.PublicKey().Address()

	abciApp, err := GenerateApp(&server.Options{
		MinFee: coin.Coin{},
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  false,
	})
	assert.Nil(t, err)
	myApp := abciApp.(weaveApp.BaseApp)

	appState := fmt.Sprintf(`{
		"cash": [
			{
				"address": "%s",
				"coins": [{"whole": 50000, "ticker": "SHD"}]
			}
		],
		"conf": {
			"cash": {
				"collector_address": "3B11C732B8FC1F09BEB34031302FE2AB347C5C14",
				"minimal_fee": {}
			},
			"treasury": {
				"metadata": {"schema": 1},
				"owner": "%s",
				"ticker": "SHD"
			},
			"migration": {
				"admin": "%s"
			}
		},
		"treasury": {
			"allocations": [
				{"name": "development", "destination": "%s", "ratio_ppm": 350000, "active": true},
				{"name": "community", "destination": "%s", "ratio_ppm": 300000, "active": true}
			]
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "treasury", "ver": 1}
		]
	}`, addr, addr, addr, addr, addr)

	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       chainID,
	})
	commitBlock(t, myApp, 1, chainID)

	// The genesis account must be registered before it can collect.
	deliverTx(t, myApp, 2, chainID, pk, 0, &Tx{
		Sum: &Tx_TreasuryCreateDistributorMsg{&treasury.CreateDistributorMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Name:     "dex swap fees",
			Source:   addr,
			FeeType:  "swap",
			Active:   true,
		}},
	})

	deliverTx(t, myApp, 3, chainID, pk, 1, &Tx{
		Sum: &Tx_TreasuryCollectFeeMsg{&treasury.CollectFeeMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Amount:   1000,
			FeeType:  "swap",
		}},
	})

	// All the collected coins sit on the custody account.
	treasuryAddr := treasury.TreasuryAccount()
	assertWallet(t, myApp, treasuryAddr, coin.Coins{coin.NewCoinp(1000, 0, "SHD")})

	var pool treasury.TreasuryPool
	queryOne(t, myApp, "/treasury", []byte("fees"), &pool)
	assert.Equal(t, int64(1000), pool.Balance)
	assert.Equal(t, int64(1000), pool.TotalCollected)

	deliverTx(t, myApp, 4, chainID, pk, 2, &Tx{
		Sum: &Tx_TreasuryDistributeFeesMsg{&treasury.DistributeFeesMsg{
			Metadata: &weave.Metadata{Schema: 1},
		}},
	})

	// 35% + 30% paid out, the remaining 35% stays pooled.
	assertWallet(t, myApp, treasuryAddr, coin.Coins{coin.NewCoinp(350, 0, "SHD")})

	queryOne(t, myApp, "/treasury", []byte("fees"), &pool)
	assert.Equal(t, int64(350), pool.Balance)
	assert.Equal(t, int64(650), pool.TotalDistributed)
}

func TestGenInitOptions(t *testing.T) {
	val, err := GenInitOptions([]string{"SHD", "c71ff10238433d17be8b8a83d072eef132b595b3"})
	assert.Nil(t, err)

	var state struct {
		Treasury struct {
			Allocations []struct {
				Name     string `json:"name"`
				RatioPpm uint32 `json:"ratio_ppm"`
				Active   bool   `json:"active"`
			} `json:"allocations"`
		} `json:"treasury"`
	}
	assert.Nil(t, json.Unmarshal(val, &state))

	want := map[string]uint32{
		"development": 350000,
		"insurance":   200000,
		"governance":  150000,
		"community":   300000,
	}
	if len(state.Treasury.Allocations) != len(want) {
		t.Fatalf("want %d allocations, got %d", len(want), len(state.Treasury.Allocations))
	}
	for _, a := range state.Treasury.Allocations {
		if want[a.Name] != a.RatioPpm {
			t.Errorf("allocation %q: want ratio %d, got %d", a.Name, want[a.Name], a.RatioPpm)
		}
		if !a.Active {
			t.Errorf("allocation %q is not active", a.Name)
		}
	}
}

// commitBlock begins, ends and commits an empty block.
func commitBlock(t *testing.T, myApp weaveApp.BaseApp, height int64, chainID string) {
	t.Helper()
	header := abci.Header{
		Height:  height,
		ChainID: chainID,
		Time:    time.Now(),
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	if len(cres.Data) == 0 {
		t.Fatal("commit returned an empty hash")
	}
}

// deliverTx signs the transaction, runs it through CheckTx and DeliverTx
// within its own block and commits.
func deliverTx(t *testing.T, myApp weaveApp.BaseApp, height int64, chainID string, pk *crypto.PrivateKey, seq int64, tx *Tx) abci.ResponseDeliverTx {
	t.Helper()

	sig, err := sigs.SignTx(pk, tx, chainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	bz, err := tx.Marshal()
	assert.Nil(t, err)

	header := abci.Header{
		Height:  height,
		ChainID: chainID,
		Time:    time.Now(),
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	if cres := myApp.CheckTx(bz); cres.Code != 0 {
		t.Fatalf("check failed: %s", cres.Log)
	}
	dres := myApp.DeliverTx(bz)
	if dres.Code != 0 {
		t.Fatalf("delivery failed: %s", dres.Log)
	}
	myApp.EndBlock(abci.RequestEndBlock{})
	myApp.Commit()
	return dres
}

func assertWallet(t *testing.T, myApp weaveApp.BaseApp, addr weave.Address, want coin.Coins) {
	t.Helper()
	var set cash.Set
	queryOne(t, myApp, "/", cash.NewBucket().DBKey(addr), &set)
	if !coin.Coins(set.Coins).Equals(want) {
		t.Fatalf("unexpected balance of %s: %v", addr, set.Coins)
	}
}

func queryOne(t *testing.T, myApp weaveApp.BaseApp, path string, key []byte, obj weave.Persistent) {
	t.Helper()
	qres := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	if qres.Code != 0 {
		t.Fatalf("query %q failed: %s", path, qres.Log)
	}
	if len(qres.Value) == 0 {
		t.Fatalf("query %q returned no value", path)
	}
	if err := weaveApp.UnmarshalOneResult(qres.Value, obj); err != nil {
		t.Fatalf("cannot unmarshal query result: %s", err)
	}
}
