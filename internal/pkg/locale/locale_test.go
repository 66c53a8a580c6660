package locale

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNew_Matching(t *testing.T) {
	cases := []struct {
		input string
		want  language.Tag
	}{
		{"", language.English},
		{"en-US", language.English},
		{"id", language.Indonesian},
		{"id-ID,id;q=0.9,en;q=0.8", language.Indonesian},
		{"not a tag!!", language.English},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, New(c.input).Tag(), c.input)
	}
}

func TestLabels_English(t *testing.T) {
	l := New("en")

	assert.Equal(t, "N/A", l.NotAvailable())
	assert.Equal(t, "Budi Santoso checked in late at 09:15", l.LateArrival("Budi Santoso", "09:15"))
	assert.Equal(t, "Oct 16", l.ShortDate(calendar.New(2026, time.October, 16)))
	assert.Equal(t, "", l.ShortDate(calendar.Date{}))
}

func TestLabels_Indonesian(t *testing.T) {
	l := New("id")

	assert.Equal(t, "Tidak tersedia", l.NotAvailable())
	assert.Equal(t, "Budi Santoso terlambat masuk pukul 09:15", l.LateArrival("Budi Santoso", "09:15"))
	assert.Equal(t, "16 Okt", l.ShortDate(calendar.New(2026, time.October, 16)))
}
