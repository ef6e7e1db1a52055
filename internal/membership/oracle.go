package membership

import (
	"context"
	"fmt"
	"strconv"

	"kinogate/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// ChatMemberFetcher is the part of *tele.Bot the oracle needs
type ChatMemberFetcher interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// handle addresses a public chat by its @username
type handle string

func (h handle) Recipient() string { return string(h) }

// userID addresses a user by numeric id
type userID int64

func (u userID) Recipient() string { return strconv.FormatInt(int64(u), 10) }

// TelegramOracle asks the Bot API for a user's membership in a channel.
// The bot must be an administrator of the channel for the lookup to work.
type TelegramOracle struct {
	fetcher ChatMemberFetcher
}

// NewTelegramOracle creates an oracle backed by the bot client
func NewTelegramOracle(fetcher ChatMemberFetcher) *TelegramOracle {
	return &TelegramOracle{fetcher: fetcher}
}

// Membership returns the user's status in the channel. Any API failure is
// reported as StatusUnknown together with domain.ErrOracleUnavailable.
func (o *TelegramOracle) Membership(ctx context.Context, channel string, uid int64) (domain.MembershipStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.StatusUnknown, fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}

	member, err := o.fetcher.ChatMemberOf(handle(channel), userID(uid))
	if err != nil {
		return domain.StatusUnknown, fmt.Errorf("%w: get chat member %s: %w", domain.ErrOracleUnavailable, channel, err)
	}
	if member == nil {
		return domain.StatusUnknown, fmt.Errorf("%w: empty chat member for %s", domain.ErrOracleUnavailable, channel)
	}
	return statusOf(member.Role), nil
}

func statusOf(role tele.MemberStatus) domain.MembershipStatus {
	switch role {
	case tele.Creator:
		return domain.StatusCreator
	case tele.Administrator:
		return domain.StatusAdministrator
	case tele.Member:
		return domain.StatusMember
	case tele.Restricted:
		return domain.StatusRestricted
	case tele.Left:
		return domain.StatusLeft
	case tele.Kicked:
		return domain.StatusKicked
	}
	return domain.StatusUnknown
}
