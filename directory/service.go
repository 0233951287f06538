package directory

import (
	"context"
	"voice_access/recognition"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type IService interface {
	Speakers(ctx context.Context) ([]string, error)
	Enroll(ctx context.Context, name string, samples []recognition.Sample) (string, error)
	Verify(ctx context.Context, probe recognition.Sample, threshold string) (*recognition.VerifyResult, error)
	Delete(ctx context.Context, name string) error
	Reload(ctx context.Context) (string, error)
}
