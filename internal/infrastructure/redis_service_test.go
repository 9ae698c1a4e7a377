package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-service/internal/domain/entities"
)

func TestDisabledRedisServiceMisses(t *testing.T) {
	ctx := context.Background()
	svc := NewRedisServiceFromClient(nil)

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.SetProfile(ctx, &entities.User{Id: "u1"}, time.Minute))

	user, err := svc.GetProfile(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, svc.DeleteProfile(ctx, "u1"))
	assert.NoError(t, svc.Close())
}

func TestNilRedisServiceIsDisabled(t *testing.T) {
	var svc *RedisService
	assert.False(t, svc.Enabled())

	user, err := svc.GetProfile(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
