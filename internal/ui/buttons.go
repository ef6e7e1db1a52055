package ui

import (
	"kinogate/internal/domain"
)

// Button tags carried in callback data
const (
	TagCheckSub      = "check_sub"
	TagAddMedia      = "add_media"
	TagAddChannel    = "add_channel"
	TagListChannels  = "list_channel"
	TagRemoveChannel = "del_channel"
	TagStats         = "stats"
	TagCancel        = "cancel"
	TagAdminMenu     = "admin_menu"
)

var (
	btnAddMedia     = domain.Button{Text: "➕ Kino qo‘shish", Tag: TagAddMedia}
	btnAddChannel   = domain.Button{Text: "📢 Kanal qo‘shish", Tag: TagAddChannel}
	btnListChannels = domain.Button{Text: "📋 Kanallar", Tag: TagListChannels}
	btnStats        = domain.Button{Text: "📊 Statistika", Tag: TagStats}
	btnCancel       = domain.Button{Text: "❌ Bekor qilish", Tag: TagCancel}
	btnCheckSub     = domain.Button{Text: "✅ Tekshirish", Tag: TagCheckSub}
	btnAdminMenu    = domain.Button{Text: "👑 Admin panel", Tag: TagAdminMenu}
)

// AdminMenu returns the operator's main keyboard
func AdminMenu() [][]domain.Button {
	return [][]domain.Button{
		{btnAddMedia, btnAddChannel},
		{btnListChannels, btnStats},
	}
}

// CancelKeyboard is attached to every prompt of a multi-step flow
func CancelKeyboard() [][]domain.Button {
	return [][]domain.Button{{btnCancel}}
}

// SubscribeKeyboard links every missing channel and offers a re-check
func SubscribeKeyboard(missing []domain.Channel) [][]domain.Button {
	rows := make([][]domain.Button, 0, len(missing)+1)
	for _, ch := range missing {
		rows = append(rows, []domain.Button{{Text: "📢 " + ch.Handle, URL: ch.URL()}})
	}
	return append(rows, []domain.Button{btnCheckSub})
}

// ChannelListKeyboard offers removal of each channel
func ChannelListKeyboard(channels []domain.Channel) [][]domain.Button {
	rows := make([][]domain.Button, 0, len(channels)+1)
	for _, ch := range channels {
		rows = append(rows, []domain.Button{{Text: "🗑 " + ch.Handle, Tag: TagRemoveChannel, Payload: ch.Handle}})
	}
	return append(rows, []domain.Button{btnAdminMenu})
}
