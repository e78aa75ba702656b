package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps a service error to an HTTP response. Domain
// rejections get the canonical status policy; anything else is an internal
// failure.
//
// Policy: absent prerequisite facts are 404, unpaid or ineligible tickets are
// 402, and everything the user cannot do with facts that do exist is 403.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	rejection, ok := usecase.AsRejection(err)
	if !ok {
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected",
		zap.String("reason", string(rejection.Reason)),
		zap.String("operation", operation))

	switch rejection.Reason {
	case usecase.RejectionMissingEnrollment,
		usecase.RejectionMissingTicket,
		usecase.RejectionRoomNotFound,
		usecase.RejectionBookingNotFound,
		usecase.RejectionHotelNotFound:
		utils.ResponseNotFound(w, rejection.Error())

	case usecase.RejectionTicketNotPaid,
		usecase.RejectionTicketIneligible:
		utils.ResponsePaymentRequired(w, rejection.Error())

	case usecase.RejectionRoomAtCapacity,
		usecase.RejectionNoExistingBooking,
		usecase.RejectionNotOwner:
		utils.ResponseForbidden(w, rejection.Error())

	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
