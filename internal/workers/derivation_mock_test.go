package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestDirectChannel_PassesKDFParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)
	want := []byte("0123456789abcdef")

	deriver.EXPECT().DeriveKey("pw-hash", "salt-hash", 16, 7).Return(want).Times(2)

	ch := NewDirectChannel(deriver)
	params := models.Params{
		models.ParamPassword:   "pw-hash",
		models.ParamSalt:       "salt-hash",
		models.ParamKeySize:    16,
		models.ParamIterations: 7,
	}

	for range 2 {
		got, err := ch.Do(context.Background(), models.FunctionKDF, params)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDerivationWorker_MockedDeriverRunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	deriver := mock.NewMockKeyDeriver(ctrl)

	deriver.EXPECT().DeriveKey("pw", "salt", 32, 1).Return(make([]byte, 32)).Times(1)

	w := NewDerivationWorker(deriver, time.Minute, logger.Nop())
	t.Cleanup(func() { _ = w.Close() })

	params := models.Params{
		models.ParamPassword:   "pw",
		models.ParamSalt:       "salt",
		models.ParamKeySize:    32,
		models.ParamIterations: 1,
	}
	for range 3 {
		_, err := w.Do(context.Background(), models.FunctionKDF, params)
		require.NoError(t, err)
	}
}

func TestWorkers_RunsMockedWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	worker := mock.NewMockWorker(ctrl)
	worker.EXPECT().Run().Times(1)

	ws := NewWorkers(worker)
	ws.Run()
	assert.NoError(t, ws.Close())
}
