// Package schedule computes remaining appointment availability.
package schedule

import "doctors-portal-api/internal/model"

// Remaining narrows each option's slots to those not yet booked. booked must
// already be filtered to the requested date; matching is by treatment name.
// Bookings for treatments absent from the catalog are ignored. The input
// slices are not mutated and slot order is preserved.
func Remaining(options []model.AppointmentOption, booked []model.Booking) []model.AppointmentOption {
	taken := make(map[string]map[string]struct{}, len(options))
	for _, b := range booked {
		slots, ok := taken[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]model.AppointmentOption, len(options))
	for i, o := range options {
		remaining := make([]string, 0, len(o.Slots))
		for _, s := range o.Slots {
			if _, ok := taken[o.Name][s]; !ok {
				remaining = append(remaining, s)
			}
		}
		o.Slots = remaining
		out[i] = o
	}
	return out
}
