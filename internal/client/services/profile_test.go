package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/imagefeed/internal/client/bootstrap"
	"github.com/dmitrijs2005/imagefeed/internal/client/client"
	"github.com/dmitrijs2005/imagefeed/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ bootstrap.ProfileClient = (*ProfileService)(nil)

func TestProfileService_FetchProfile(t *testing.T) {
	fc := &fakeClient{ProfileRet: &client.ProfileResponse{
		UserName: "jdoe", FirstName: "John", LastName: "Doe", Bio: "shoots film",
	}}
	svc := NewProfileService(fc)

	_, ok := svc.Profile()
	require.False(t, ok)

	p, err := svc.FetchProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{
		UserName: "jdoe", DisplayName: "John Doe", LoginName: "@jdoe", Bio: "shoots film",
	}, p)
	assert.Equal(t, "tok", fc.LastToken)

	cached, ok := svc.Profile()
	require.True(t, ok)
	assert.Equal(t, p, cached)
}

func TestProfileService_FetchProfile_Error_KeepsCache(t *testing.T) {
	fc := &fakeClient{ProfileRet: &client.ProfileResponse{UserName: "jdoe"}}
	svc := NewProfileService(fc)

	_, err := svc.FetchProfile(context.Background(), "tok")
	require.NoError(t, err)

	fc.ProfileErr = client.ErrUnavailable
	_, err = svc.FetchProfile(context.Background(), "tok")
	require.ErrorIs(t, err, client.ErrUnavailable)

	cached, ok := svc.Profile()
	require.True(t, ok)
	assert.Equal(t, "jdoe", cached.UserName)
}

func TestProfileService_FetchAvatarURL(t *testing.T) {
	fc := &fakeClient{AvatarRet: "https://images.example/jdoe.jpg"}
	svc := NewProfileService(fc)

	u, err := svc.FetchAvatarURL(context.Background(), "tok", "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/jdoe.jpg", u)
	assert.Equal(t, "jdoe", fc.LastUserName)
	assert.Equal(t, u, svc.AvatarURL())
}

func TestProfileService_FetchAvatarURL_Error(t *testing.T) {
	svc := NewProfileService(&fakeClient{AvatarErr: client.ErrUnauthorized})

	_, err := svc.FetchAvatarURL(context.Background(), "tok", "jdoe")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, svc.AvatarURL())
}

func TestProfileService_Forget(t *testing.T) {
	svc := NewProfileService(&fakeClient{
		ProfileRet: &client.ProfileResponse{UserName: "jdoe"},
		AvatarRet:  "https://images.example/jdoe.jpg",
	})
	ctx := context.Background()

	_, err := svc.FetchProfile(ctx, "tok")
	require.NoError(t, err)
	_, err = svc.FetchAvatarURL(ctx, "tok", "jdoe")
	require.NoError(t, err)

	svc.Forget()

	_, ok := svc.Profile()
	assert.False(t, ok)
	assert.Empty(t, svc.AvatarURL())
}
