package contracts

import (
	"clinic-portal-service/internal/pkg/clinic_dto"
	"clinic-portal-service/internal/pkg/dto/requests"
	"context"
)

type AppointmentUsecase interface {
	SearchAvailableDoctors(ctx context.Context, request *requests.SearchAvailableDoctors) ([]clinic_dto.Doctor, error)
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*clinic_dto.Appointment, error)
	FindAll(ctx context.Context, listQuery *requests.ListQuery) ([]clinic_dto.Appointment, error)
	FindByID(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int, request *requests.UpdateAppointmentStatus) (*clinic_dto.Appointment, error)
	Cancel(ctx context.Context, appointmentID int) (*clinic_dto.Appointment, error)
}
