package service

import (
	"context"
	"testing"

	"smarttech/dao"
	"smarttech/models"
	"smarttech/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRequestLifecycle(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewServiceRequestService(dao.NewServiceRequest(db), mailer)

	item, err := svc.Create(context.Background(), testEmail, &types.ServiceRequestCreateReq{
		Name:        "Ravi Kumar",
		Phone:       "9876543210",
		DeviceType:  "laptop",
		Description: "屏幕碎裂",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusPending, item.Status)
	assert.Equal(t, testEmail, item.Email)

	mine, err := svc.ListByEmail(context.Background(), testEmail)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, svc.UpdateStatus(context.Background(), &types.ServiceStatusUpdateReq{
		ID: item.ID, Status: models.ServiceStatusInProgress,
	}))

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusInProgress, all[0].Status)

	require.NoError(t, svc.Remove(context.Background(), item.ID))
	err = svc.Remove(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceRequestSendMessage(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewServiceRequestService(dao.NewServiceRequest(db), mailer)

	item, err := svc.Create(context.Background(), testEmail, &types.ServiceRequestCreateReq{
		Name: "Ravi Kumar", Phone: "9876543210", DeviceType: "mobile",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendMessage(context.Background(), &types.ServiceMessageReq{
		ID:      item.ID,
		Message: "配件已到货，今天开始维修",
	}))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0], testEmail)

	// 发信失败不影响接口结果
	mailer.fail = true
	assert.NoError(t, svc.SendMessage(context.Background(), &types.ServiceMessageReq{
		ID: item.ID, Message: "再次通知",
	}))

	err = svc.SendMessage(context.Background(), &types.ServiceMessageReq{ID: 404, Message: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
