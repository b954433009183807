package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/repository"
	"github.com/pages-alex-alex2006hw/gulliver/internal/repository/mock"
	"github.com/pages-alex-alex2006hw/gulliver/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPwaService_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().GetByID(gomock.Any(), "abc").Return(model.PWA{ID: "abc", DisplayName: "Foo"}, nil)

	svc := service.NewPwaService(mockPwas, 100)

	pwa, err := svc.Get(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "Foo", pwa.DisplayName)
}

func TestPwaService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().GetByID(gomock.Any(), "missing").Return(model.PWA{}, sql.ErrNoRows)

	svc := service.NewPwaService(mockPwas, 100)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Contains(t, err.Error(), "missing")
}

func TestPwaService_Get_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewPwaService(mock.NewMockPwaRepository(ctrl), 100)

	_, err := svc.Get(context.Background(), "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestPwaService_Get_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("disk melted")
	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().GetByID(gomock.Any(), "abc").Return(model.PWA{}, storeErr)

	svc := service.NewPwaService(mockPwas, 100)

	_, err := svc.Get(context.Background(), "abc")
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, service.ErrNotFound)
}

func TestPwaService_List_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().
		List(gomock.Any(), repository.ListQuery{Limit: 100, Sort: repository.SortNewest}).
		Return([]model.PWA{{ID: "a"}}, nil)

	svc := service.NewPwaService(mockPwas, 100)

	pwas, err := svc.List(context.Background(), service.ListParams{Sort: "totally-unknown"})
	require.NoError(t, err)
	require.Len(t, pwas, 1)
}

func TestPwaService_List_PassesSkipAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	skip := 20
	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().
		List(gomock.Any(), repository.ListQuery{Skip: &skip, Limit: 5, Sort: repository.SortScore}).
		Return(nil, nil)

	svc := service.NewPwaService(mockPwas, 100)

	_, err := svc.List(context.Background(), service.ListParams{Skip: &skip, Limit: 5, Sort: "score"})
	require.NoError(t, err)
}

func TestPwaService_List_NegativeSkipDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	skip := -3
	mockPwas := mock.NewMockPwaRepository(ctrl)
	mockPwas.EXPECT().
		List(gomock.Any(), repository.ListQuery{Limit: 100, Sort: repository.SortNewest}).
		Return(nil, nil)

	svc := service.NewPwaService(mockPwas, 100)

	_, err := svc.List(context.Background(), service.ListParams{Skip: &skip})
	require.NoError(t, err)
}
