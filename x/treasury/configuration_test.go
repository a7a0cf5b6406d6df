package treasury

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

func TestConfigurationValidate(t *testing.T) {
	addr := weave.Address("f427d624ed29c1fae0e2")

	cases := map[string]struct {
		conf    Configuration
		wantErr *errors.Error
	}{
		"valid configuration": {
			conf: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
				Ticker:   "IOV",
			},
			wantErr: nil,
		},
		"all contracts configured": {
			conf: Configuration{
				Metadata:           &weave.Metadata{Schema: 1},
				Owner:              addr,
				Ticker:             "IOV",
				PolicyContract:     addr,
				PoolContract:       addr,
				InsuranceContract:  addr,
				GovernanceContract: addr,
			},
			wantErr: nil,
		},
		"owner is required": {
			conf: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Ticker:   "IOV",
			},
			wantErr: errors.ErrState,
		},
		"ticker must be a valid currency code": {
			conf: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
				Ticker:   "x",
			},
			wantErr: errors.ErrCurrency,
		},
		"contract address must be valid when set": {
			conf: Configuration{
				Metadata:       &weave.Metadata{Schema: 1},
				Owner:          addr,
				Ticker:         "IOV",
				PolicyContract: []byte("zzz"),
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.conf.Validate(); !tc.wantErr.Is(err) {
				t.Logf("want %q", tc.wantErr)
				t.Logf("got %q", err)
				t.Fatal("unexpected validation result")
			}
		})
	}
}
