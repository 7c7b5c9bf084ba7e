package services_test

import (
	"testing"
	"time"

	"replenish/internal/core/domain/services"
	"replenish/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end int) services.BusinessWindow {
	t.Helper()
	w, err := services.NewBusinessWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewBusinessWindow(t *testing.T) {
	t.Run("accepts a standard office window", func(t *testing.T) {
		w, err := services.NewBusinessWindow(9, 17)

		require.NoError(t, err)
		assert.Equal(t, 9, w.StartHour)
		assert.Equal(t, 17, w.EndHour)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, err := services.NewBusinessWindow(17, 9)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects out-of-range hours", func(t *testing.T) {
		_, err := services.NewBusinessWindow(-1, 17)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = services.NewBusinessWindow(9, 25)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWorkCalendar_AddWorkingHours(t *testing.T) {
	calendar := services.NewWorkCalendar(mustWindow(t, 9, 17))

	// 2026-03-06 is a Friday, 2026-03-09 the following Monday.
	friday := func(hour int) time.Time {
		return time.Date(2026, time.March, 6, hour, 0, 0, 0, time.UTC)
	}

	t.Run("Friday 16:00 plus 8 hours lands on Monday 09:00", func(t *testing.T) {
		deadline := calendar.AddWorkingHours(friday(16), 8)

		assert.Equal(t, time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC), deadline)
	})

	t.Run("deadline inside the same business day stays put", func(t *testing.T) {
		deadline := calendar.AddWorkingHours(friday(10), 4)

		assert.Equal(t, friday(14), deadline)
	})

	t.Run("deadline past window end clips to the next business day", func(t *testing.T) {
		monday := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)

		deadline := calendar.AddWorkingHours(monday, 8)

		assert.Equal(t, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), deadline)
	})

	t.Run("deadline before window start clips forward to window start", func(t *testing.T) {
		sundayNight := time.Date(2026, time.March, 8, 22, 0, 0, 0, time.UTC)

		deadline := calendar.AddWorkingHours(sundayNight, 2)

		assert.Equal(t, time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC), deadline)
	})

	t.Run("saturday receipt rolls to Monday", func(t *testing.T) {
		saturday := time.Date(2026, time.March, 7, 11, 0, 0, 0, time.UTC)

		deadline := calendar.AddWorkingHours(saturday, 1)

		assert.Equal(t, time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC), deadline)
	})
}
