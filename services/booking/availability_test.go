package booking

import (
	"errors"
	"testing"
	"time"

	"medigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoctorRepo struct {
	doctor *models.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(doctorID string) (*models.Doctor, error) {
	return f.doctor, f.err
}

func (f *fakeDoctorRepo) FindBySpecialization(specialization string, limit int64) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) GetSpecializations() ([]models.Specialization, error) {
	return nil, nil
}

type fakeApptRepo struct {
	booked    map[string][]models.SlotWindow // keyed by date
	bookedErr error
	conflict  bool
	checkErr  error
	createErr error
	created   []*models.Appointment
}

func (f *fakeApptRepo) Create(appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeApptRepo) FindBookedSlots(doctorID, date string) ([]models.SlotWindow, error) {
	if f.bookedErr != nil {
		return nil, f.bookedErr
	}
	return f.booked[date], nil
}

func (f *fakeApptRepo) HasConflict(doctorID, date, startTime, endTime string) (bool, error) {
	return f.conflict, f.checkErr
}

func (f *fakeApptRepo) CountAll() (int64, error) { return int64(len(f.created)), nil }

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

// 2025-06-01 is a Sunday.
var availNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:   "doc-1",
		Name: "Dr. A",
		Availability: map[string][]models.SlotWindow{
			"Monday": {
				{StartTime: "09:00", EndTime: "10:00"},
				{StartTime: "10:00", EndTime: "11:00"},
			},
			"Wednesday": {
				{StartTime: "14:00", EndTime: "15:00"},
			},
		},
	}
}

func TestOpenSlotsSubtractsBookedAppointments(t *testing.T) {
	appts := &fakeApptRepo{booked: map[string][]models.SlotWindow{
		"2025-06-02": {{StartTime: "09:00", EndTime: "10:00"}}, // Monday
	}}
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: appts,
		Now:          func() time.Time { return availNow },
	}

	days, err := svc.OpenSlots("doc-1", 3)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "Monday", days[0].DayName)
	assert.Equal(t, "2025-06-02", days[0].Date)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, "10:00", days[0].Slots[0].StartTime)

	assert.Equal(t, "Wednesday", days[1].DayName)
	require.Len(t, days[1].Slots, 1)
}

func TestOpenSlotsOmitsFullyBookedDays(t *testing.T) {
	appts := &fakeApptRepo{booked: map[string][]models.SlotWindow{
		"2025-06-02": {
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:00", EndTime: "11:00"},
		},
	}}
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: appts,
		Now:          func() time.Time { return availNow },
	}

	days, err := svc.OpenSlots("doc-1", 3)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Wednesday", days[0].DayName)
}

func TestOpenSlotsWindowStartsTomorrow(t *testing.T) {
	doctor := testDoctor()
	doctor.Availability = map[string][]models.SlotWindow{
		"Sunday": {{StartTime: "09:00", EndTime: "10:00"}},
	}
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: doctor},
		Appointments: &fakeApptRepo{},
		Now:          func() time.Time { return availNow }, // a Sunday
	}

	days, err := svc.OpenSlots("doc-1", 3)
	require.NoError(t, err)
	assert.Empty(t, days, "today's weekday is outside a 3-day window starting tomorrow")
}

func TestOpenSlotsUnknownDoctorIsEmptyNotError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: nil},
		Appointments: &fakeApptRepo{},
		Now:          func() time.Time { return availNow },
	}

	days, err := svc.OpenSlots("missing", 7)
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestOpenSlotsStoreErrorIsLookupError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{err: errors.New("mongo down")},
		Appointments: &fakeApptRepo{},
		Now:          func() time.Time { return availNow },
	}

	_, err := svc.OpenSlots("doc-1", 7)
	var lookupErr *LookupError
	assert.ErrorAs(t, err, &lookupErr)
}
