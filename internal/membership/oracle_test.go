package membership

import (
	"context"
	"fmt"
	"testing"

	"kinogate/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

type fakeFetcher struct {
	member *tele.ChatMember
	err    error

	chat string
	user string
}

func (f *fakeFetcher) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	f.chat = chat.Recipient()
	f.user = user.Recipient()
	return f.member, f.err
}

func TestTelegramOracle_Membership(t *testing.T) {
	tests := []struct {
		name           string
		member         *tele.ChatMember
		fetchErr       error
		expectedStatus domain.MembershipStatus
		expectedError  bool
	}{
		{
			name:           "member",
			member:         &tele.ChatMember{Role: tele.Member},
			expectedStatus: domain.StatusMember,
		},
		{
			name:           "administrator",
			member:         &tele.ChatMember{Role: tele.Administrator},
			expectedStatus: domain.StatusAdministrator,
		},
		{
			name:           "creator",
			member:         &tele.ChatMember{Role: tele.Creator},
			expectedStatus: domain.StatusCreator,
		},
		{
			name:           "left",
			member:         &tele.ChatMember{Role: tele.Left},
			expectedStatus: domain.StatusLeft,
		},
		{
			name:           "kicked",
			member:         &tele.ChatMember{Role: tele.Kicked},
			expectedStatus: domain.StatusKicked,
		},
		{
			name:           "unrecognized status",
			member:         &tele.ChatMember{Role: tele.MemberStatus("something_new")},
			expectedStatus: domain.StatusUnknown,
		},
		{
			name:           "api error",
			fetchErr:       fmt.Errorf("telegram: chat not found (400)"),
			expectedStatus: domain.StatusUnknown,
			expectedError:  true,
		},
		{
			name:           "empty response",
			expectedStatus: domain.StatusUnknown,
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{member: tt.member, err: tt.fetchErr}
			oracle := NewTelegramOracle(fetcher)

			status, err := oracle.Membership(context.Background(), "@req1", 555)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "@req1", fetcher.chat)
			assert.Equal(t, "555", fetcher.user)
		})
	}
}

func TestTelegramOracle_CancelledContext(t *testing.T) {
	fetcher := &fakeFetcher{member: &tele.ChatMember{Role: tele.Member}}
	oracle := NewTelegramOracle(fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := oracle.Membership(ctx, "@req1", 555)

	assert.Equal(t, domain.StatusUnknown, status)
	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
	assert.Empty(t, fetcher.chat)
}
