//go:build unit

package settings_test

import (
	"context"
	"errors"
	"testing"

	"teetime-exchange/internal/infra/settings"
	settingsmock "teetime-exchange/tests/mock/settings"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	const key = "PROVIDER_BOOKING_NOTE"

	testCases := []struct {
		name      string
		setupMock func(*settingsmock.MockSettingsQueries)
		want      string
		wantErr   bool
	}{
		{
			name: "stored value",
			setupMock: func(m *settingsmock.MockSettingsQueries) {
				m.EXPECT().GetAppSetting(ctx, gomock.Any(), key).Return("Booked via the exchange", nil)
			},
			want: "Booked via the exchange",
		},
		{
			name: "missing key reads as empty",
			setupMock: func(m *settingsmock.MockSettingsQueries) {
				m.EXPECT().GetAppSetting(ctx, gomock.Any(), key).Return("", pgx.ErrNoRows)
			},
		},
		{
			name: "database failure",
			setupMock: func(m *settingsmock.MockSettingsQueries) {
				m.EXPECT().GetAppSetting(ctx, gomock.Any(), key).Return("", errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := settingsmock.NewMockSettingsQueries(ctrl)
			tc.setupMock(mockQueries)

			got, err := settings.NewStore(mockQueries, nil).Get(ctx, key)

			if tc.wantErr {
				require.ErrorContains(t, err, "load app setting "+key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
