package booking

import "posada/models"

// User-facing rejection messages. These mirror the wording the backend
// uses for the same conditions so the client renders one vocabulary.
const (
	msgFieldRequired    = "Este campo es requerido"
	msgInvalidDate      = "Fecha inválida"
	msgCheckOutTooEarly = "La fecha de salida debe ser posterior a la fecha de entrada"
	msgRoomNotBookable  = "La habitación no está disponible para reservas"
	msgOverOccupancy    = "La cantidad de huéspedes supera la capacidad de la habitación"
	msgAdultsRequired   = "Debe haber al menos un adulto"
)

// ValidateStay checks a check-in/check-out date pair. It returns a map
// of field name to message, empty when the pair forms a valid stay of
// at least one night.
func ValidateStay(checkIn, checkOut string) map[string]string {
	fieldErrors := map[string]string{}

	if checkIn == "" {
		fieldErrors["checkInDate"] = msgFieldRequired
	} else if _, err := ParseStayDate(checkIn); err != nil {
		fieldErrors["checkInDate"] = msgInvalidDate
	}
	if checkOut == "" {
		fieldErrors["checkOutDate"] = msgFieldRequired
	} else if _, err := ParseStayDate(checkOut); err != nil {
		fieldErrors["checkOutDate"] = msgInvalidDate
	}
	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	in, _ := ParseStayDate(checkIn)
	out, _ := ParseStayDate(checkOut)
	if !out.After(in) {
		fieldErrors["checkOutDate"] = msgCheckOutTooEarly
	}
	return fieldErrors
}

// ValidateReservation runs the full pre-submission check for a booking
// against the target room. It returns nil when the payload is clean.
func ValidateReservation(room *models.Room, payload models.ReservationPayload) map[string]string {
	fieldErrors := ValidateStay(payload.CheckInDate, payload.CheckOutDate)

	if payload.Adults < 1 {
		fieldErrors["adults"] = msgAdultsRequired
	} else if room.MaxOccupancy > 0 && payload.Adults+payload.Children > room.MaxOccupancy {
		fieldErrors["adults"] = msgOverOccupancy
	}

	if !room.Status.Bookable() {
		fieldErrors["roomId"] = msgRoomNotBookable
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
