package storage

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestWrapS3Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback error
		want     error
	}{
		{"missing object code", &smithy.GenericAPIError{Code: "NoSuchKey"}, ErrGetFailed, ErrNotFound},
		{"head not found", &smithy.GenericAPIError{Code: "NotFound"}, ErrGetFailed, ErrNotFound},
		{"typed missing object", &types.NoSuchKey{}, ErrGetFailed, ErrNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, ErrListFailed, ErrAccessDenied},
		{"forbidden", &smithy.GenericAPIError{Code: "Forbidden"}, ErrGetFailed, ErrAccessDenied},
		{"unknown code", &smithy.GenericAPIError{Code: "SlowDown"}, ErrListFailed, ErrListFailed},
		{"plain error", errors.New("connection reset"), ErrGetFailed, ErrGetFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wrapS3Error(tt.err, tt.fallback)
			require.ErrorIs(t, got, tt.want)
			require.Contains(t, got.Error(), tt.err.Error())
		})
	}
}
