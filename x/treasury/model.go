package treasury

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &TreasuryPool{}, migration.NoModification)
	migration.MustRegister(1, &FeeAllocation{}, migration.NoModification)
	migration.MustRegister(1, &FeeDistributor{}, migration.NoModification)
	migration.MustRegister(1, &FeeDiscount{}, migration.NoModification)
	migration.MustRegister(1, &DistributionBatch{}, migration.NoModification)
}

const (
	// wholeRatio is a ratio of 100%. All ratios are expressed in parts
	// per million so that integer arithmetic stays exact.
	wholeRatio = 1000000

	// batchCapacity is the maximum number of entries a single
	// distribution batch can hold. Distribution over more active
	// allocations than this must fail.
	batchCapacity = 10

	// maxNameLength keeps allocation and distributor labels sane.
	maxNameLength = 128
)

// validateRatio returns an error if given ratio is outside of the 0 to 100%
// range. Model validation returns a different class of error than message
// validation, that is why the base error class must be given.
func validateRatio(ratio uint32, baseErr *errors.Error) error {
	if ratio > wholeRatio {
		return errors.Wrapf(baseErr, "ratio must not be greater than %d", wholeRatio)
	}
	return nil
}

func validateName(name string, baseErr *errors.Error) error {
	if name == "" {
		return errors.Wrap(baseErr, "name is required")
	}
	if len(name) > maxNameLength {
		return errors.Wrapf(baseErr, "name longer than %d characters", maxNameLength)
	}
	return nil
}

var _ orm.CloneableData = (*TreasuryPool)(nil)

func (tp *TreasuryPool) Validate() error {
	if err := tp.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if tp.Balance < 0 {
		return errors.Wrap(errors.ErrModel, "negative balance")
	}
	if tp.TotalCollected < 0 {
		return errors.Wrap(errors.ErrModel, "negative total collected")
	}
	if tp.TotalDistributed < 0 {
		return errors.Wrap(errors.ErrModel, "negative total distributed")
	}
	return nil
}

func (tp *TreasuryPool) Copy() orm.CloneableData {
	return &TreasuryPool{
		Metadata:         tp.Metadata.Copy(),
		Balance:          tp.Balance,
		TotalCollected:   tp.TotalCollected,
		TotalDistributed: tp.TotalDistributed,
	}
}

var _ orm.CloneableData = (*FeeAllocation)(nil)

func (fa *FeeAllocation) Validate() error {
	if err := fa.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := validateName(fa.Name, errors.ErrModel); err != nil {
		return err
	}
	if err := fa.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := validateRatio(fa.RatioPpm, errors.ErrModel); err != nil {
		return err
	}
	if fa.TotalReceived < 0 {
		return errors.Wrap(errors.ErrModel, "negative total received")
	}
	return nil
}

func (fa *FeeAllocation) Copy() orm.CloneableData {
	return &FeeAllocation{
		Metadata:               fa.Metadata.Copy(),
		Name:                   fa.Name,
		Destination:            fa.Destination.Clone(),
		RatioPpm:               fa.RatioPpm,
		Active:                 fa.Active,
		TotalReceived:          fa.TotalReceived,
		LastDistributionHeight: fa.LastDistributionHeight,
	}
}

var _ orm.CloneableData = (*FeeDistributor)(nil)

func (fd *FeeDistributor) Validate() error {
	if err := fd.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := validateName(fd.Name, errors.ErrModel); err != nil {
		return err
	}
	if err := fd.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if fd.FeeType == "" {
		return errors.Wrap(errors.ErrModel, "fee type is required")
	}
	if err := validateRatio(fd.RatioPpm, errors.ErrModel); err != nil {
		return err
	}
	if fd.TotalCollected < 0 {
		return errors.Wrap(errors.ErrModel, "negative total collected")
	}
	return nil
}

func (fd *FeeDistributor) Copy() orm.CloneableData {
	return &FeeDistributor{
		Metadata:             fd.Metadata.Copy(),
		Name:                 fd.Name,
		Source:               fd.Source.Clone(),
		FeeType:              fd.FeeType,
		Active:               fd.Active,
		TotalCollected:       fd.TotalCollected,
		LastCollectionHeight: fd.LastCollectionHeight,
		RatioPpm:             fd.RatioPpm,
	}
}

var _ orm.CloneableData = (*FeeDiscount)(nil)

func (fd *FeeDiscount) Validate() error {
	if err := fd.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := validateRatio(fd.RatioPpm, errors.ErrModel); err != nil {
		return err
	}
	if fd.ExpireAt <= 0 {
		return errors.Wrap(errors.ErrModel, "expiration height is required")
	}
	if fd.TotalDiscounted < 0 {
		return errors.Wrap(errors.ErrModel, "negative total discounted")
	}
	return nil
}

func (fd *FeeDiscount) Copy() orm.CloneableData {
	return &FeeDiscount{
		Metadata:        fd.Metadata.Copy(),
		RatioPpm:        fd.RatioPpm,
		ExpireAt:        fd.ExpireAt,
		Active:          fd.Active,
		TotalDiscounted: fd.TotalDiscounted,
	}
}

var _ orm.CloneableData = (*DistributionBatch)(nil)

func (db *DistributionBatch) Validate() error {
	if err := db.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(db.Entries) > batchCapacity {
		return errors.Wrapf(ErrBatchCapacity, "more than %d entries", batchCapacity)
	}
	if db.Total < 0 {
		return errors.Wrap(errors.ErrModel, "negative total")
	}
	for i, e := range db.Entries {
		if len(e.Allocation) == 0 {
			return errors.Wrapf(errors.ErrModel, "entry %d missing allocation", i)
		}
		if e.Amount < 0 {
			return errors.Wrapf(errors.ErrModel, "entry %d negative amount", i)
		}
	}
	return nil
}

func (db *DistributionBatch) Copy() orm.CloneableData {
	cpy := &DistributionBatch{
		Metadata: db.Metadata.Copy(),
		Entries:  make([]*BatchEntry, len(db.Entries)),
		Total:    db.Total,
		Height:   db.Height,
	}
	for i := range db.Entries {
		cpy.Entries[i] = &BatchEntry{
			Allocation: append([]byte(nil), db.Entries[i].Allocation...),
			Amount:     db.Entries[i].Amount,
		}
	}
	return cpy
}

// TreasuryAccount returns the address that keeps custody of all pooled
// fee coins until they are distributed.
func TreasuryAccount() weave.Address {
	return weave.NewCondition("treasury", "pool", []byte("fees")).Address()
}

// poolKey is the fixed key of the only TreasuryPool instance.
var poolKey = []byte("fees")

func NewPoolBucket() orm.ModelBucket {
	b := orm.NewModelBucket("treasury", &TreasuryPool{})
	return migration.NewModelBucket("treasury", b)
}

func NewAllocationBucket() orm.ModelBucket {
	b := orm.NewModelBucket("alloc", &FeeAllocation{},
		orm.WithIDSequence(allocationSeq),
		orm.WithIndex("active", idxActive, false),
	)
	return migration.NewModelBucket("treasury", b)
}

var allocationSeq = orm.NewSequence("alloc", "id")

// ActiveIndexKey is the only value the allocation active index is built
// over. Inactive allocations are not indexed at all, so a single index
// lookup returns the ids of all active allocations.
var ActiveIndexKey = []byte("1")

func idxActive(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	a, ok := obj.Value().(*FeeAllocation)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of FeeAllocation")
	}
	if !a.Active {
		return nil, nil
	}
	return ActiveIndexKey, nil
}

func NewDistributorBucket() orm.ModelBucket {
	b := orm.NewModelBucket("dist", &FeeDistributor{},
		orm.WithIDSequence(distributorSeq),
		orm.WithIndex("source", idxSource, false),
	)
	return migration.NewModelBucket("treasury", b)
}

var distributorSeq = orm.NewSequence("dist", "id")

func toDistributor(obj orm.Object) (*FeeDistributor, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	d, ok := obj.Value().(*FeeDistributor)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of FeeDistributor")
	}
	return d, nil
}

func idxSource(obj orm.Object) ([]byte, error) {
	d, err := toDistributor(obj)
	if err != nil {
		return nil, err
	}
	return d.Source, nil
}

func NewDiscountBucket() orm.ModelBucket {
	b := orm.NewModelBucket("discount", &FeeDiscount{})
	return migration.NewModelBucket("treasury", b)
}

func NewBatchBucket() orm.ModelBucket {
	b := orm.NewModelBucket("batch", &DistributionBatch{},
		orm.WithIDSequence(batchSeq),
	)
	return migration.NewModelBucket("treasury", b)
}

var batchSeq = orm.NewSequence("batch", "id")
