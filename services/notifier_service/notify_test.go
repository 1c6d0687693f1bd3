package notifier_service

import (
	"context"
	"testing"
	"time"

	"duty-bot/repositories/duty_repository"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.February, 1, 9, 0, 0, 0, TimeZone)

type fakeSender struct {
	sentTo  []int64
	texts   []string
	failFor map[int64]bool
}

func (r *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}

	if r.failFor[msg.ChatID] {
		return tgbotapi.Message{}, errors.New("chat unreachable")
	}

	r.sentTo = append(r.sentTo, msg.ChatID)
	r.texts = append(r.texts, msg.Text)

	return tgbotapi.Message{}, nil
}

func setupNotifier(t *testing.T, admins []int64) (*Service, *duty_repository.Repository, *fakeSender) {
	t.Helper()

	repo, err := duty_repository.NewRepository(context.Background(), ":memory:")
	require.NoError(t, err, "failed to open test repository")

	sender := &fakeSender{failFor: make(map[int64]bool)}

	service := NewService(repo, sender, gocron.NewScheduler(TimeZone), admins)
	service.now = func() time.Time { return testNow }

	return service, repo, sender
}

func TestUnit_SendToday_NoDuty_FallsBackToAdmins(t *testing.T) {
	ctx := context.Background()
	service, _, sender := setupNotifier(t, []int64{100, 200})

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{100, 200}, sender.sentTo)
	require.Len(t, sender.texts, 2)
	assert.Equal(t, "No duty found for 2024-02-01.", sender.texts[0])
}

func TestUnit_SendToday_RendersNamesInOrder(t *testing.T) {
	ctx := context.Background()
	service, repo, sender := setupNotifier(t, []int64{100})

	err := repo.ReplaceDuties(ctx, []duty_repository.Duty{
		{DutyDate: "2024-02-01", Name: "Alice"},
		{DutyDate: "2024-02-01", Name: "Bob"},
		{DutyDate: "2024-02-02", Name: "Carol"},
	})
	require.NoError(t, err)

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	require.Len(t, sender.texts, 1)
	assert.Equal(t, "On duty for 2024-02-01:\n- Alice\n- Bob", sender.texts[0])
}

func TestUnit_SendToday_RegisteredRecipientsWin(t *testing.T) {
	ctx := context.Background()
	service, repo, sender := setupNotifier(t, []int64{100})

	require.NoError(t, repo.AddRecipient(ctx, 300))
	require.NoError(t, repo.AddRecipient(ctx, 400))

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{300, 400}, sender.sentTo)
}

func TestUnit_SendToday_OneFailureDoesNotAbortOthers(t *testing.T) {
	ctx := context.Background()
	service, repo, sender := setupNotifier(t, nil)

	require.NoError(t, repo.AddRecipient(ctx, 300))
	require.NoError(t, repo.AddRecipient(ctx, 400))
	require.NoError(t, repo.AddRecipient(ctx, 500))
	sender.failFor[400] = true

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{300, 500}, sender.sentTo)
}

func TestUnit_SendToday_InactiveMonth_SendsNothing(t *testing.T) {
	ctx := context.Background()
	service, repo, sender := setupNotifier(t, []int64{100})

	require.NoError(t, repo.SetConfig(ctx, ConfigKeySelectedMonth, "2024-03"))

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Zero(t, sent)
	assert.Empty(t, sender.sentTo)
}

func TestUnit_SendToday_MalformedMonthFilter_Ignored(t *testing.T) {
	ctx := context.Background()
	service, repo, sender := setupNotifier(t, []int64{100})

	require.NoError(t, repo.SetConfig(ctx, ConfigKeySelectedMonth, "next month"))

	sent, err := service.SendToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Len(t, sender.sentTo, 1)
}

func TestUnit_NewService_DefaultClockInFixedZone(t *testing.T) {
	repo, err := duty_repository.NewRepository(context.Background(), ":memory:")
	require.NoError(t, err)

	service := NewService(repo, &fakeSender{}, gocron.NewScheduler(TimeZone), nil)
	assert.Equal(t, "Europe/Moscow", service.now().Location().String())
}

func TestUnit_MonthMatches_Ok(t *testing.T) {
	assert.True(t, monthMatches("2024-02", testNow))
	assert.False(t, monthMatches("2024-03", testNow))
	assert.False(t, monthMatches("2023-02", testNow))
	assert.True(t, monthMatches("garbage", testNow))
}
