package treasury

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateAllocationMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateAllocationMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateDistributorMsg{}, migration.NoModification)
	migration.MustRegister(1, &CollectFeeMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeFeesMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetDiscountMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApplyDiscountMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateAllocationMsg)(nil)

func (CreateAllocationMsg) Path() string {
	return "treasury/create_allocation"
}

func (msg *CreateAllocationMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := validateName(msg.Name, errors.ErrMsg); err != nil {
		return err
	}
	if err := msg.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	// A zero ratio is a valid allocation that receives no share.
	if err := validateRatio(msg.RatioPpm, errors.ErrMsg); err != nil {
		return err
	}
	return nil
}

var _ weave.Msg = (*UpdateAllocationMsg)(nil)

func (UpdateAllocationMsg) Path() string {
	return "treasury/update_allocation"
}

func (msg *UpdateAllocationMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if len(msg.AllocationId) != 8 {
		return errors.Wrap(errors.ErrMsg, "allocation id is invalid")
	}
	if msg.Destination != nil {
		if err := msg.Destination.Validate(); err != nil {
			return errors.Wrap(err, "destination")
		}
	}
	// A nil ratio keeps the current value.
	if msg.Ratio != nil {
		if err := validateRatio(msg.Ratio.Ppm, errors.ErrMsg); err != nil {
			return err
		}
	}
	switch msg.Toggle {
	case Toggle_UNSET, Toggle_ACTIVE, Toggle_INACTIVE:
		// All good.
	default:
		return errors.Wrapf(errors.ErrMsg, "invalid toggle: %s", msg.Toggle)
	}
	return nil
}

var _ weave.Msg = (*CreateDistributorMsg)(nil)

func (CreateDistributorMsg) Path() string {
	return "treasury/create_distributor"
}

func (msg *CreateDistributorMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := validateName(msg.Name, errors.ErrMsg); err != nil {
		return err
	}
	if err := msg.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if msg.FeeType == "" {
		return errors.Wrap(errors.ErrMsg, "fee type is required")
	}
	if err := validateRatio(msg.RatioPpm, errors.ErrMsg); err != nil {
		return err
	}
	return nil
}

var _ weave.Msg = (*CollectFeeMsg)(nil)

func (CollectFeeMsg) Path() string {
	return "treasury/collect_fee"
}

func (msg *CollectFeeMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if msg.Amount <= 0 {
		return errors.Wrap(errors.ErrAmount, "fee must be greater than zero")
	}
	if msg.FeeType == "" {
		return errors.Wrap(errors.ErrMsg, "fee type is required")
	}
	return nil
}

var _ weave.Msg = (*DistributeFeesMsg)(nil)

func (DistributeFeesMsg) Path() string {
	return "treasury/distribute"
}

func (msg *DistributeFeesMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	return nil
}

var _ weave.Msg = (*SetDiscountMsg)(nil)

func (SetDiscountMsg) Path() string {
	return "treasury/set_discount"
}

func (msg *SetDiscountMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := msg.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	// A zero ratio discount is valid and leaves the fee unchanged.
	if err := validateRatio(msg.RatioPpm, errors.ErrMsg); err != nil {
		return err
	}
	if msg.Duration <= 0 {
		return errors.Wrap(errors.ErrMsg, "duration must be greater than zero")
	}
	return nil
}

var _ weave.Msg = (*ApplyDiscountMsg)(nil)

func (ApplyDiscountMsg) Path() string {
	return "treasury/apply_discount"
}

func (msg *ApplyDiscountMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if err := msg.Account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	if msg.Fee < 0 {
		return errors.Wrap(errors.ErrAmount, "negative fee")
	}
	return nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "treasury/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "invalid metadata")
	}
	if msg.Patch == nil {
		return errors.Wrap(errors.ErrMsg, "patch is required")
	}
	// The patch is sparse. Only fields that are set are validated, the
	// rest keeps the current configuration value.
	if len(msg.Patch.Owner) != 0 {
		if err := msg.Patch.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner address")
		}
	}
	if msg.Patch.Ticker != "" && !coin.IsCC(msg.Patch.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", msg.Patch.Ticker)
	}
	if len(msg.Patch.PolicyContract) != 0 {
		if err := msg.Patch.PolicyContract.Validate(); err != nil {
			return errors.Wrap(err, "policy contract address")
		}
	}
	if len(msg.Patch.PoolContract) != 0 {
		if err := msg.Patch.PoolContract.Validate(); err != nil {
			return errors.Wrap(err, "pool contract address")
		}
	}
	if len(msg.Patch.InsuranceContract) != 0 {
		if err := msg.Patch.InsuranceContract.Validate(); err != nil {
			return errors.Wrap(err, "insurance contract address")
		}
	}
	if len(msg.Patch.GovernanceContract) != 0 {
		if err := msg.Patch.GovernanceContract.Validate(); err != nil {
			return errors.Wrap(err, "governance contract address")
		}
	}
	return nil
}
