package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/nutrition-coach/internal/domain"
	"github.com/google/uuid"
)

func TestLifestyleService_Get_NoSchedule(t *testing.T) {
	users := NewMockUserRepository()
	user := users.addUser("UTC")
	svc := NewLifestyleService(NewMockLifestyleRepository(), users)

	resp, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if resp.SleepAnalysis.SleepStatus != domain.SleepStatusUnknown || resp.SleepAnalysis.SleepHours != nil {
		t.Errorf("sleep analysis = %+v, want unknown", resp.SleepAnalysis)
	}
	if resp.UpdatedAt != nil {
		t.Error("updated_at should be nil without a schedule")
	}
	if resp.WakeTime != nil || resp.SleepTime != nil {
		t.Error("timings should be nil without a schedule")
	}
}

func TestLifestyleService_Update(t *testing.T) {
	users := NewMockUserRepository()
	user := users.addUser("UTC")
	repo := NewMockLifestyleRepository()
	svc := NewLifestyleService(repo, users)

	resp, err := svc.Update(context.Background(), user.ID, &domain.UpdateLifestyleRequest{
		WakeTime:   strPtr("06:30"),
		DinnerTime: strPtr("20:00"),
		SleepTime:  strPtr("23:00"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if resp.SleepAnalysis.SleepStatus != domain.SleepStatusOptimal {
		t.Errorf("status = %s, want optimal", resp.SleepAnalysis.SleepStatus)
	}
	if resp.SleepAnalysis.SleepHours == nil || *resp.SleepAnalysis.SleepHours != 7.5 {
		t.Errorf("hours = %v, want 7.5", resp.SleepAnalysis.SleepHours)
	}
	if resp.UpdatedAt == nil {
		t.Error("updated_at should be set")
	}
	firstID := repo.schedules[user.ID].ID

	// Full replacement: omitted fields are cleared
	resp, err = svc.Update(context.Background(), user.ID, &domain.UpdateLifestyleRequest{
		WakeTime: strPtr("07:00"),
	})
	if err != nil {
		t.Fatalf("second Update() error = %v", err)
	}
	if resp.DinnerTime != nil || resp.SleepTime != nil {
		t.Error("omitted fields should be cleared")
	}
	if resp.SleepAnalysis.SleepStatus != domain.SleepStatusUnknown {
		t.Errorf("status = %s, want unknown", resp.SleepAnalysis.SleepStatus)
	}
	if repo.schedules[user.ID].ID != firstID {
		t.Error("upsert should keep a single schedule per user")
	}

	got, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.WakeTime == nil || *got.WakeTime != "07:00" {
		t.Errorf("wake time = %v, want 07:00", got.WakeTime)
	}
}

func TestLifestyleService_Update_Errors(t *testing.T) {
	users := NewMockUserRepository()
	user := users.addUser("UTC")
	repo := NewMockLifestyleRepository()
	svc := NewLifestyleService(repo, users)

	tests := []struct {
		name    string
		userID  uuid.UUID
		req     *domain.UpdateLifestyleRequest
		wantErr error
	}{
		{"unknown user", uuid.New(), &domain.UpdateLifestyleRequest{}, domain.ErrNotFound},
		{"hour out of range", user.ID, &domain.UpdateLifestyleRequest{WakeTime: strPtr("24:00")}, domain.ErrInvalidInput},
		{"not a clock value", user.ID, &domain.UpdateLifestyleRequest{SleepTime: strPtr("late")}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.userID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if len(repo.schedules) != 0 {
		t.Error("failed updates should not store a schedule")
	}
}
