package ui

import (
	"testing"

	"kinogate/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeKeyboard(t *testing.T) {
	rows := SubscribeKeyboard([]domain.Channel{{Handle: "@moviechannel"}, {Handle: "@req1"}})

	assert.Len(t, rows, 3)
	assert.Equal(t, "https://t.me/moviechannel", rows[0][0].URL)
	assert.Equal(t, "https://t.me/req1", rows[1][0].URL)
	assert.Equal(t, TagCheckSub, rows[2][0].Tag)
}

func TestChannelListKeyboard(t *testing.T) {
	rows := ChannelListKeyboard([]domain.Channel{{Handle: "@req1"}})

	assert.Len(t, rows, 2)
	assert.Equal(t, TagRemoveChannel, rows[0][0].Tag)
	assert.Equal(t, "@req1", rows[0][0].Payload)
	assert.Equal(t, TagAdminMenu, rows[1][0].Tag)
}
