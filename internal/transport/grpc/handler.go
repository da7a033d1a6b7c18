package grpc

import (
	"context"
	"errors"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"
	pb "habit-reminder/proto/reminder/v1"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ReminderHandler serves the chat transport
type ReminderHandler struct {
	pb.UnimplementedReminderServiceServer
	habits service.HabitService
	ledger service.CompletionLedger
	stats  service.StatsService
	now    func() time.Time
}

// NewReminderHandler creates a handler over the habit services
func NewReminderHandler(habits service.HabitService, ledger service.CompletionLedger, stats service.StatsService) *ReminderHandler {
	return &ReminderHandler{
		habits: habits,
		ledger: ledger,
		stats:  stats,
		now:    time.Now,
	}
}

// toStatus maps error kinds to gRPC codes. Store failures keep their cause
// out of the message.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidTimezone), errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrDuplicateHabit):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrStore):
		return status.Error(codes.Unavailable, "storage unavailable, try again later")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return id, nil
}

func mapUserToProto(user *entity.User) *pb.User {
	return &pb.User{
		Id:         user.ID.String(),
		ExternalId: user.ExternalID,
		Timezone:   user.Timezone,
		CreatedAt:  timestamppb.New(user.CreatedAt),
	}
}

func mapHabitToProto(habit *entity.Habit) *pb.Habit {
	return &pb.Habit{
		Id:        habit.ID.String(),
		UserId:    habit.UserID.String(),
		Title:     habit.Title,
		Hour:      int32(habit.Hour),
		Minute:    int32(habit.Minute),
		DaysMask:  uint32(habit.DaysMask),
		IsActive:  habit.IsActive,
		CreatedAt: timestamppb.New(habit.CreatedAt),
	}
}

// localDay returns the requested date, or today in tz when raw is empty
func (h *ReminderHandler) localDay(raw, tz string) (localtime.Date, error) {
	if raw != "" {
		d, err := localtime.ParseDate(raw)
		if err != nil {
			return localtime.Date{}, status.Error(codes.InvalidArgument, err.Error())
		}
		return d, nil
	}
	lt, err := localtime.UTCToLocal(h.now(), tz)
	if err != nil {
		return localtime.Date{}, toStatus(err)
	}
	return lt.Date, nil
}

// RPC Handlers

func (h *ReminderHandler) GetOrCreateUser(ctx context.Context, req *pb.GetOrCreateUserRequest) (*pb.GetOrCreateUserResponse, error) {
	user, err := h.habits.GetOrCreateUser(ctx, req.GetExternalId(), req.GetTimezone())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetOrCreateUserResponse{User: mapUserToProto(user)}, nil
}

func (h *ReminderHandler) AddHabit(ctx context.Context, req *pb.AddHabitRequest) (*pb.AddHabitResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	// WeekdayMask is 8 bits wide; reject before the conversion truncates
	if req.GetDaysMask() > uint32(entity.EveryDay) {
		return nil, status.Error(codes.InvalidArgument, "days_mask must be between 1 and 127")
	}

	habit, err := h.habits.AddHabit(ctx, userID, req.GetTitle(), int(req.GetHour()), int(req.GetMinute()), entity.WeekdayMask(req.GetDaysMask()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AddHabitResponse{Habit: mapHabitToProto(habit)}, nil
}

func (h *ReminderHandler) ListHabits(ctx context.Context, req *pb.ListHabitsRequest) (*pb.ListHabitsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	habits, err := h.habits.HabitsForUser(ctx, userID, req.GetActiveOnly())
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.ListHabitsResponse{Habits: make([]*pb.Habit, 0, len(habits))}
	for _, habit := range habits {
		resp.Habits = append(resp.Habits, mapHabitToProto(habit))
	}
	return resp, nil
}

func (h *ReminderHandler) SetHabitActive(ctx context.Context, req *pb.SetHabitActiveRequest) (*pb.SetHabitActiveResponse, error) {
	habitID, err := parseUUID("habit_id", req.GetHabitId())
	if err != nil {
		return nil, err
	}

	if err := h.habits.SetHabitActive(ctx, habitID, req.GetActive()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetHabitActiveResponse{}, nil
}

func (h *ReminderHandler) DeleteHabit(ctx context.Context, req *pb.DeleteHabitRequest) (*pb.DeleteHabitResponse, error) {
	habitID, err := parseUUID("habit_id", req.GetHabitId())
	if err != nil {
		return nil, err
	}

	if err := h.habits.DeleteHabit(ctx, habitID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteHabitResponse{}, nil
}

func (h *ReminderHandler) MarkDone(ctx context.Context, req *pb.MarkDoneRequest) (*pb.MarkDoneResponse, error) {
	habitID, err := parseUUID("habit_id", req.GetHabitId())
	if err != nil {
		return nil, err
	}

	tz := req.GetTimezone()
	if tz == "" {
		habit, err := h.habits.GetHabit(ctx, habitID)
		if err != nil {
			return nil, toStatus(err)
		}
		owner, err := h.habits.GetUser(ctx, habit.UserID)
		if err != nil {
			return nil, toStatus(err)
		}
		tz = owner.Timezone
	}

	day, err := h.localDay(req.GetLocalDate(), tz)
	if err != nil {
		return nil, err
	}

	if err := h.ledger.MarkDone(ctx, habitID, day, tz); err != nil {
		return nil, toStatus(err)
	}

	return &pb.MarkDoneResponse{LocalDate: day.String(), Timezone: tz}, nil
}

func (h *ReminderHandler) GetStats(ctx context.Context, req *pb.GetStatsRequest) (*pb.GetStatsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}

	tz := req.GetTimezone()
	if tz == "" {
		user, err := h.habits.GetUser(ctx, userID)
		if err != nil {
			return nil, toStatus(err)
		}
		tz = user.Timezone
	}

	day, err := h.localDay(req.GetLocalDate(), tz)
	if err != nil {
		return nil, err
	}

	rows, err := h.stats.StatsLast7Days(ctx, userID, day, tz)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &pb.GetStatsResponse{LocalDate: day.String(), Rows: make([]*pb.StatRow, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, &pb.StatRow{
			HabitId: row.HabitID.String(),
			Title:   row.Title,
			Done:    int32(row.Done),
			Missed:  int32(row.Missed),
		})
	}
	return resp, nil
}
