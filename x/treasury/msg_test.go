package treasury

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestCreateAllocationMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     CreateAllocationMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: addr,
				RatioPpm:    350000,
				Active:      true,
			},
			wantErr: nil,
		},
		"name is required": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Destination: addr,
				RatioPpm:    350000,
			},
			wantErr: errors.ErrMsg,
		},
		"a zero ratio is valid": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: addr,
				Active:      true,
			},
			wantErr: nil,
		},
		"the whole ratio is valid": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: addr,
				RatioPpm:    wholeRatio,
			},
			wantErr: nil,
		},
		"ratio must not exceed the whole": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: addr,
				RatioPpm:    wholeRatio + 1,
			},
			wantErr: errors.ErrMsg,
		},
		"destination must be a valid address": {
			msg: CreateAllocationMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "development",
				Destination: []byte("zzz"),
				RatioPpm:    350000,
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestUpdateAllocationMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     UpdateAllocationMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: weavetest.SequenceID(1),
				Destination:  addr,
				Ratio:        &Ratio{Ppm: 350000},
				Toggle:       Toggle_ACTIVE,
			},
			wantErr: nil,
		},
		"a sparse patch is valid": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: weavetest.SequenceID(1),
				Toggle:       Toggle_UNSET,
			},
			wantErr: nil,
		},
		"an explicit zero ratio is valid": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: weavetest.SequenceID(1),
				Ratio:        &Ratio{Ppm: 0},
			},
			wantErr: nil,
		},
		"allocation id is required": {
			msg: UpdateAllocationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrMsg,
		},
		"allocation id must be a sequence value": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: []byte("x"),
			},
			wantErr: errors.ErrMsg,
		},
		"ratio must not exceed the whole": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: weavetest.SequenceID(1),
				Ratio:        &Ratio{Ppm: wholeRatio + 1},
			},
			wantErr: errors.ErrMsg,
		},
		"toggle must be a known value": {
			msg: UpdateAllocationMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				AllocationId: weavetest.SequenceID(1),
				Toggle:       Toggle(666),
			},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestCreateDistributorMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     CreateDistributorMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   addr,
				FeeType:  "swap",
				Active:   true,
				RatioPpm: 100000,
			},
			wantErr: nil,
		},
		"ratio is optional": {
			msg: CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   addr,
				FeeType:  "swap",
			},
			wantErr: nil,
		},
		"ratio must not exceed the whole": {
			msg: CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   addr,
				FeeType:  "swap",
				RatioPpm: wholeRatio + 1,
			},
			wantErr: errors.ErrMsg,
		},
		"fee type is required": {
			msg: CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   addr,
			},
			wantErr: errors.ErrMsg,
		},
		"source must be a valid address": {
			msg: CreateDistributorMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Name:     "dex swap fees",
				Source:   []byte("zzz"),
				FeeType:  "swap",
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestCollectFeeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     CollectFeeMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: CollectFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   100,
				FeeType:  "swap",
			},
			wantErr: nil,
		},
		"amount must be greater than zero": {
			msg: CollectFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   0,
				FeeType:  "swap",
			},
			wantErr: errors.ErrAmount,
		},
		"amount must not be negative": {
			msg: CollectFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   -100,
				FeeType:  "swap",
			},
			wantErr: errors.ErrAmount,
		},
		"fee type is required": {
			msg: CollectFeeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   100,
			},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestSetDiscountMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     SetDiscountMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: SetDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				RatioPpm: 250000,
				Duration: 100,
				Active:   true,
			},
			wantErr: nil,
		},
		"account is required": {
			msg: SetDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				RatioPpm: 250000,
				Duration: 100,
			},
			wantErr: errors.ErrEmpty,
		},
		"a zero ratio is valid": {
			msg: SetDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				Duration: 100,
				Active:   true,
			},
			wantErr: nil,
		},
		"ratio must not exceed the whole": {
			msg: SetDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				RatioPpm: wholeRatio + 1,
				Duration: 100,
			},
			wantErr: errors.ErrMsg,
		},
		"duration must be greater than zero": {
			msg: SetDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				RatioPpm: 250000,
			},
			wantErr: errors.ErrMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestApplyDiscountMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     ApplyDiscountMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: ApplyDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				Fee:      100,
			},
			wantErr: nil,
		},
		"a zero fee is valid": {
			msg: ApplyDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
			},
			wantErr: nil,
		},
		"fee must not be negative": {
			msg: ApplyDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  addr,
				Fee:      -1,
			},
			wantErr: errors.ErrAmount,
		},
		"account is required": {
			msg: ApplyDiscountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Fee:      100,
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		msg     UpdateConfigurationMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    addr,
					Ticker:   "IOV",
				},
			},
			wantErr: nil,
		},
		"an empty patch is valid": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
				},
			},
			wantErr: nil,
		},
		"patch is required": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrMsg,
		},
		"ticker must be a valid currency code": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Ticker:   "not a ticker",
				},
			},
			wantErr: errors.ErrCurrency,
		},
		"owner must be a valid address": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    []byte("zzz"),
				},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}
