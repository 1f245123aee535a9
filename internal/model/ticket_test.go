package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketCanBook(t *testing.T) {
	cases := []struct {
		name          string
		status        string
		isRemote      bool
		includesHotel bool
		want          bool
	}{
		{"paid in-person with hotel", TicketStatusPaid, false, true, true},
		{"reserved ticket", TicketStatusReserved, false, true, false},
		{"remote ticket", TicketStatusPaid, true, true, false},
		{"no hotel included", TicketStatusPaid, false, false, false},
		{"remote without hotel", TicketStatusPaid, true, false, false},
		{"unpaid remote", TicketStatusReserved, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := Ticket{
				Status: tc.status,
				Type:   TicketType{IsRemote: tc.isRemote, IncludesHotel: tc.includesHotel},
			}
			assert.Equal(t, tc.want, tk.CanBook())
		})
	}
}
