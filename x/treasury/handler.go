package treasury

import (
	"bytes"
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	createAllocationCost  int64 = 100
	updateAllocationCost  int64 = 50
	createDistributorCost int64 = 100
	collectFeeCost        int64 = 50
	distributeFeesCost    int64 = 200
	setDiscountCost       int64 = 50
	applyDiscountCost     int64 = 0
	updateConfCost        int64 = 50
)

const (
	tagAction      = "action"
	tagAllocation  = "allocation-id"
	tagDistributor = "distributor-id"
	tagBatch       = "batch-id"
	tagAccount     = "account"
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("treasury", r)

	allocations := NewAllocationBucket()
	distributors := NewDistributorBucket()
	discounts := NewDiscountBucket()
	batches := NewBatchBucket()
	pool := NewPoolBucket()

	r.Handle(&CreateAllocationMsg{}, &createAllocationHandler{
		auth:        auth,
		allocations: allocations,
		pool:        pool,
	})
	r.Handle(&UpdateAllocationMsg{}, &updateAllocationHandler{
		auth:        auth,
		allocations: allocations,
		pool:        pool,
	})
	r.Handle(&CreateDistributorMsg{}, &createDistributorHandler{
		auth:         auth,
		distributors: distributors,
		pool:         pool,
	})
	r.Handle(&CollectFeeMsg{}, &collectFeeHandler{
		auth:         auth,
		distributors: distributors,
		pool:         pool,
		ctrl:         ctrl,
	})
	r.Handle(&DistributeFeesMsg{}, &distributeFeesHandler{
		auth:        auth,
		allocations: allocations,
		batches:     batches,
		pool:        pool,
		ctrl:        ctrl,
	})
	r.Handle(&SetDiscountMsg{}, &setDiscountHandler{
		auth:      auth,
		discounts: discounts,
		pool:      pool,
	})
	r.Handle(&ApplyDiscountMsg{}, &applyDiscountHandler{
		auth:      auth,
		discounts: discounts,
		pool:      pool,
	})
	r.Handle(&UpdateConfigurationMsg{}, &updateConfigurationHandler{
		auth: auth,
	})
}

// RegisterQuery registers treasury buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewPoolBucket().Register("treasury", qr)
	NewAllocationBucket().Register("allocations", qr)
	NewDistributorBucket().Register("distributors", qr)
	NewDiscountBucket().Register("discounts", qr)
	NewBatchBucket().Register("batches", qr)
}

// loadPool returns the treasury pool singleton. A missing pool means the
// treasury was never initialized via the genesis.
func loadPool(db weave.ReadOnlyKVStore, bucket orm.ModelBucket) (*TreasuryPool, error) {
	var pool TreasuryPool
	switch err := bucket.One(db, poolKey, &pool); {
	case err == nil:
		return &pool, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrState, "treasury not initialized")
	default:
		return nil, errors.Wrap(err, "load pool")
	}
}

// ratioShare computes the floor of amount*ratio/wholeRatio. Splitting the
// amount into the quotient and the remainder keeps the multiplication
// within the int64 range for any valid ratio.
func ratioShare(amount int64, ratio uint32) int64 {
	q := amount / wholeRatio
	r := amount % wholeRatio
	return q*int64(ratio) + r*int64(ratio)/wholeRatio
}

// allAllocations returns all stored allocations in ascending id order
// together with their keys. Allocation ids are dense because they come from
// a sequence and allocations are never deleted, so a plain scan is enough.
func allAllocations(db weave.ReadOnlyKVStore, bucket orm.ModelBucket) ([][]byte, []*FeeAllocation, error) {
	var (
		keys   [][]byte
		allocs []*FeeAllocation
	)
	for id := uint64(1); ; id++ {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, id)
		var a FeeAllocation
		switch err := bucket.One(db, key, &a); {
		case err == nil:
			keys = append(keys, key)
			allocs = append(allocs, &a)
		case errors.ErrNotFound.Is(err):
			return keys, allocs, nil
		default:
			return nil, nil, errors.Wrapf(err, "allocation %d", id)
		}
	}
}

// activeRatioSum returns the combined ratio of all active allocations,
// ignoring the allocation stored under the skip key.
func activeRatioSum(db weave.ReadOnlyKVStore, bucket orm.ModelBucket, skip []byte) (int64, error) {
	keys, allocs, err := allAllocations(db, bucket)
	if err != nil {
		return 0, err
	}
	var sum int64
	for i, a := range allocs {
		if skip != nil && bytes.Equal(keys[i], skip) {
			continue
		}
		if a.Active {
			sum += int64(a.RatioPpm)
		}
	}
	return sum, nil
}

type createAllocationHandler struct {
	auth        x.Authenticator
	allocations orm.ModelBucket
	pool        orm.ModelBucket
}

var _ weave.Handler = (*createAllocationHandler)(nil)

func (h *createAllocationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createAllocationCost}, nil
}

func (h *createAllocationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key, err := allocationSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	alloc := &FeeAllocation{
		Metadata:    &weave.Metadata{Schema: 1},
		Name:        msg.Name,
		Destination: msg.Destination,
		RatioPpm:    msg.RatioPpm,
		Active:      msg.Active,
	}
	if _, err := h.allocations.Put(db, key, alloc); err != nil {
		return nil, errors.Wrap(err, "cannot store allocation")
	}

	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAllocation), Value: key},
		{Key: []byte(tagAction), Value: []byte("allocation-added")},
	}...)
	return res, nil
}

func (h *createAllocationHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateAllocationMsg, error) {
	var msg CreateAllocationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	if msg.Active {
		sum, err := activeRatioSum(db, h.allocations, nil)
		if err != nil {
			return nil, err
		}
		if sum+int64(msg.RatioPpm) > wholeRatio {
			return nil, errors.Wrap(errors.ErrInput, "active allocation ratios exceed 100%")
		}
	}
	return &msg, nil
}

type updateAllocationHandler struct {
	auth        x.Authenticator
	allocations orm.ModelBucket
	pool        orm.ModelBucket
}

var _ weave.Handler = (*updateAllocationHandler)(nil)

func (h *updateAllocationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateAllocationCost}, nil
}

func (h *updateAllocationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, alloc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if _, err := h.allocations.Put(db, msg.AllocationId, alloc); err != nil {
		return nil, errors.Wrap(err, "cannot store allocation")
	}

	res := &weave.DeliverResult{Data: msg.AllocationId}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAllocation), Value: msg.AllocationId},
		{Key: []byte(tagAction), Value: []byte("allocation-updated")},
	}...)
	return res, nil
}

// validate returns the allocation with the patch already applied. Check and
// Deliver both see the final state this way and the headroom computation
// cannot diverge.
func (h *updateAllocationHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateAllocationMsg, *FeeAllocation, error) {
	var msg UpdateAllocationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}

	var alloc FeeAllocation
	if err := h.allocations.One(db, msg.AllocationId, &alloc); err != nil {
		return nil, nil, errors.Wrap(err, "allocation")
	}

	if msg.Destination != nil {
		alloc.Destination = msg.Destination
	}
	if msg.Ratio != nil {
		alloc.RatioPpm = msg.Ratio.Ppm
	}
	switch msg.Toggle {
	case Toggle_ACTIVE:
		alloc.Active = true
	case Toggle_INACTIVE:
		alloc.Active = false
	}

	if alloc.Active {
		sum, err := activeRatioSum(db, h.allocations, msg.AllocationId)
		if err != nil {
			return nil, nil, err
		}
		if sum+int64(alloc.RatioPpm) > wholeRatio {
			return nil, nil, errors.Wrap(errors.ErrInput, "active allocation ratios exceed 100%")
		}
	}
	return &msg, &alloc, nil
}

type createDistributorHandler struct {
	auth         x.Authenticator
	distributors orm.ModelBucket
	pool         orm.ModelBucket
}

var _ weave.Handler = (*createDistributorHandler)(nil)

func (h *createDistributorHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createDistributorCost}, nil
}

func (h *createDistributorHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	key, err := distributorSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	dist := &FeeDistributor{
		Metadata: &weave.Metadata{Schema: 1},
		Name:     msg.Name,
		Source:   msg.Source,
		FeeType:  msg.FeeType,
		Active:   msg.Active,
		RatioPpm: msg.RatioPpm,
	}
	if _, err := h.distributors.Put(db, key, dist); err != nil {
		return nil, errors.Wrap(err, "cannot store distributor")
	}

	res := &weave.DeliverResult{Data: key}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagDistributor), Value: key},
		{Key: []byte(tagAction), Value: []byte("distributor-added")},
	}...)
	return res, nil
}

func (h *createDistributorHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateDistributorMsg, error) {
	var msg CreateDistributorMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}

type collectFeeHandler struct {
	auth         x.Authenticator
	distributors orm.ModelBucket
	pool         orm.ModelBucket
	ctrl         CashController
}

var _ weave.Handler = (*collectFeeHandler)(nil)

func (h *collectFeeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: collectFeeCost}, nil
}

func (h *collectFeeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, distKey, dist, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	pool, err := loadPool(db, h.pool)
	if err != nil {
		return nil, err
	}

	fee := coin.NewCoin(msg.Amount, 0, conf.Ticker)
	if err := h.ctrl.MoveCoins(db, dist.Source, TreasuryAccount(), fee); err != nil {
		return nil, errors.Wrap(err, "cannot collect fee")
	}

	height, _ := weave.GetHeight(ctx)
	dist.TotalCollected += msg.Amount
	dist.LastCollectionHeight = height
	if _, err := h.distributors.Put(db, distKey, dist); err != nil {
		return nil, errors.Wrap(err, "cannot store distributor")
	}

	pool.Balance += msg.Amount
	pool.TotalCollected += msg.Amount
	if _, err := h.pool.Put(db, poolKey, pool); err != nil {
		return nil, errors.Wrap(err, "cannot store pool")
	}

	res := &weave.DeliverResult{Data: distKey}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagDistributor), Value: distKey},
		{Key: []byte(tagAction), Value: []byte("fee-collected")},
	}...)
	return res, nil
}

// validate resolves the transaction signer to an active distributor. When
// one source account is registered multiple times the active distributor
// with the lowest id wins.
func (h *collectFeeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CollectFeeMsg, []byte, *FeeDistributor, error) {
	var msg CollectFeeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadConf(db); err != nil {
		return nil, nil, nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, nil, nil, err
	}

	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "signature required")
	}
	source := signer.Address()

	var dists []*FeeDistributor
	keys, err := h.distributors.ByIndex(db, "source", source, &dists)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "distributor lookup")
	}
	var (
		distKey []byte
		dist    *FeeDistributor
	)
	for i, d := range dists {
		if !d.Active {
			continue
		}
		if distKey == nil || bytes.Compare(keys[i], distKey) < 0 {
			distKey = keys[i]
			dist = d
		}
	}
	if dist == nil {
		return nil, nil, nil, errors.Wrapf(ErrNoDistributor, "source %s", source)
	}
	return &msg, distKey, dist, nil
}

type distributeFeesHandler struct {
	auth        x.Authenticator
	allocations orm.ModelBucket
	batches     orm.ModelBucket
	pool        orm.ModelBucket
	ctrl        CashController
}

var _ weave.Handler = (*distributeFeesHandler)(nil)

func (h *distributeFeesHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: distributeFeesCost}, nil
}

func (h *distributeFeesHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, pool, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	keys, allocs, err := allAllocations(db, h.allocations)
	if err != nil {
		return nil, err
	}
	var (
		actKeys   [][]byte
		actAllocs []*FeeAllocation
	)
	for i, a := range allocs {
		if a.Active {
			actKeys = append(actKeys, keys[i])
			actAllocs = append(actAllocs, a)
		}
	}
	if len(actAllocs) > batchCapacity {
		return nil, errors.Wrapf(ErrBatchCapacity, "%d active allocations", len(actAllocs))
	}

	// Shares are computed against the balance snapshot taken before any
	// transfer. Ratios of inactive allocations are ignored, their cut
	// stays in the pool.
	pre := pool.Balance
	treasury := TreasuryAccount()
	entries := make([]*BatchEntry, 0, len(actAllocs))
	var total int64
	for i, a := range actAllocs {
		share := ratioShare(pre, a.RatioPpm)
		if share > 0 {
			c := coin.NewCoin(share, 0, conf.Ticker)
			if err := h.ctrl.MoveCoins(db, treasury, a.Destination, c); err != nil {
				return nil, errors.Wrapf(err, "transfer to allocation %q", a.Name)
			}
		}
		entries = append(entries, &BatchEntry{Allocation: actKeys[i], Amount: share})
		total += share
	}

	height, _ := weave.GetHeight(ctx)
	for i, a := range actAllocs {
		a.TotalReceived += entries[i].Amount
		a.LastDistributionHeight = height
		if _, err := h.allocations.Put(db, actKeys[i], a); err != nil {
			return nil, errors.Wrap(err, "cannot store allocation")
		}
	}

	pool.Balance -= total
	pool.TotalDistributed += total
	if _, err := h.pool.Put(db, poolKey, pool); err != nil {
		return nil, errors.Wrap(err, "cannot store pool")
	}

	batchKey, err := batchSeq.NextVal(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire key")
	}
	batch := &DistributionBatch{
		Metadata: &weave.Metadata{Schema: 1},
		Entries:  entries,
		Total:    total,
		Height:   height,
	}
	if _, err := h.batches.Put(db, batchKey, batch); err != nil {
		return nil, errors.Wrap(err, "cannot store batch")
	}

	res := &weave.DeliverResult{Data: batchKey}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagBatch), Value: batchKey},
		{Key: []byte(tagAction), Value: []byte("fees-distributed")},
	}...)
	return res, nil
}

func (h *distributeFeesHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Configuration, *TreasuryPool, error) {
	var msg DistributeFeesMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	pool, err := loadPool(db, h.pool)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	if pool.Balance <= 0 {
		return nil, nil, errors.Wrap(errors.ErrEmpty, "nothing to distribute")
	}
	return conf, pool, nil
}

type setDiscountHandler struct {
	auth      x.Authenticator
	discounts orm.ModelBucket
	pool      orm.ModelBucket
}

var _ weave.Handler = (*setDiscountHandler)(nil)

func (h *setDiscountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: setDiscountCost}, nil
}

func (h *setDiscountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	height, _ := weave.GetHeight(ctx)
	disc := &FeeDiscount{
		Metadata: &weave.Metadata{Schema: 1},
		RatioPpm: msg.RatioPpm,
		ExpireAt: height + msg.Duration,
		Active:   msg.Active,
	}
	// Overwriting a discount must not reset the lifetime counter.
	var current FeeDiscount
	if err := h.discounts.One(db, msg.Account, &current); err == nil {
		disc.TotalDiscounted = current.TotalDiscounted
	} else if !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "discount lookup")
	}
	if _, err := h.discounts.Put(db, msg.Account, disc); err != nil {
		return nil, errors.Wrap(err, "cannot store discount")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAccount), Value: msg.Account},
		{Key: []byte(tagAction), Value: []byte("fee-discount-set")},
	}...)
	return res, nil
}

func (h *setDiscountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetDiscountMsg, error) {
	var msg SetDiscountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}

type applyDiscountHandler struct {
	auth      x.Authenticator
	discounts orm.ModelBucket
	pool      orm.ModelBucket
}

var _ weave.Handler = (*applyDiscountHandler)(nil)

func (h *applyDiscountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: applyDiscountCost}, nil
}

// Deliver charges the account the effective fee. The result data contains
// the effective fee encoded as a big endian integer. Accounts with a
// missing, inactive or expired discount pay the full fee. An expired
// discount is deactivated on first use.
func (h *applyDiscountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res := &weave.DeliverResult{}
	effective := msg.Fee

	var disc FeeDiscount
	switch err := h.discounts.One(db, msg.Account, &disc); {
	case err == nil:
		height, _ := weave.GetHeight(ctx)
		if disc.Active && height > disc.ExpireAt {
			disc.Active = false
			if _, err := h.discounts.Put(db, msg.Account, &disc); err != nil {
				return nil, errors.Wrap(err, "cannot store discount")
			}
		}
		if disc.Active {
			cut := ratioShare(msg.Fee, disc.RatioPpm)
			if cut > 0 {
				effective = msg.Fee - cut
				disc.TotalDiscounted += cut
				if _, err := h.discounts.Put(db, msg.Account, &disc); err != nil {
					return nil, errors.Wrap(err, "cannot store discount")
				}
				res.Tags = append(res.Tags, []common.KVPair{
					{Key: []byte(tagAccount), Value: msg.Account},
					{Key: []byte(tagAction), Value: []byte("fee-discount-applied")},
				}...)
			}
		}
	case errors.ErrNotFound.Is(err):
		// No discount, the full fee applies.
	default:
		return nil, errors.Wrap(err, "discount lookup")
	}

	res.Data = make([]byte, 8)
	binary.BigEndian.PutUint64(res.Data, uint64(effective))
	return res, nil
}

func (h *applyDiscountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApplyDiscountMsg, error) {
	var msg ApplyDiscountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if _, err := loadPool(db, h.pool); err != nil {
		return nil, err
	}
	var authorized bool
	if len(conf.PolicyContract) != 0 && h.auth.HasAddress(ctx, conf.PolicyContract) {
		authorized = true
	}
	if len(conf.PoolContract) != 0 && h.auth.HasAddress(ctx, conf.PoolContract) {
		authorized = true
	}
	if !authorized {
		return nil, errors.Wrap(errors.ErrUnauthorized, "policy or pool contract signature required")
	}
	return &msg, nil
}

type updateConfigurationHandler struct {
	auth x.Authenticator
}

var _ weave.Handler = (*updateConfigurationHandler)(nil)

func (h *updateConfigurationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateConfCost}, nil
}

func (h *updateConfigurationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	p := msg.Patch
	if len(p.Owner) != 0 {
		conf.Owner = p.Owner
	}
	if p.Ticker != "" {
		conf.Ticker = p.Ticker
	}
	if len(p.PolicyContract) != 0 {
		conf.PolicyContract = p.PolicyContract
	}
	if len(p.PoolContract) != 0 {
		conf.PoolContract = p.PoolContract
	}
	if len(p.InsuranceContract) != 0 {
		conf.InsuranceContract = p.InsuranceContract
	}
	if len(p.GovernanceContract) != 0 {
		conf.GovernanceContract = p.GovernanceContract
	}
	if err := gconf.Save(db, "treasury", conf); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}

	res := &weave.DeliverResult{}
	res.Tags = append(res.Tags, []common.KVPair{
		{Key: []byte(tagAction), Value: []byte("configuration-updated")},
	}...)
	return res, nil
}

func (h *updateConfigurationHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateConfigurationMsg, *Configuration, error) {
	var msg UpdateConfigurationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, conf, nil
}
