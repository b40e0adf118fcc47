package service

import (
	"context"
	"fmt"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"
	"github.com/EN-BAAK/Company-management-system-server/internal/config"
	"github.com/EN-BAAK/Company-management-system-server/internal/dto"
	"github.com/EN-BAAK/Company-management-system-server/internal/report"
	"github.com/EN-BAAK/Company-management-system-server/internal/repository"
)

// ReportService builds the shifts report PDF. With a workerName the report
// covers that single worker in ascending date order; without one, the
// remaining filters select shifts across workers in descending order.
type ReportService interface {
	Build(ctx context.Context, q dto.ReportQuery) (*dto.ReportFile, error)
}

type reportService struct {
	shifts repository.ShiftRepository
	users  repository.UserRepository
	cfg    *config.Config
}

func NewReportService(shifts repository.ShiftRepository, users repository.UserRepository, cfg *config.Config) ReportService {
	return &reportService{shifts: shifts, users: users, cfg: cfg}
}

func (s *reportService) Build(ctx context.Context, q dto.ReportQuery) (*dto.ReportFile, error) {
	filter := dto.ShiftFilter{
		WorkerPhone: q.WorkerPhone,
		CompanyName: q.CompanyName,
		Searcher:    q.Searcher,
	}
	var err error
	if filter.DateFrom, filter.DateTo, err = parseDateRange(q.Date1, q.Date2); err != nil {
		return nil, err
	}

	subject := report.Subject{Name: "Multiple Workers"}

	if q.WorkerName != "" {
		worker, err := s.users.FindByName(ctx, q.WorkerName)
		if err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFound(fmt.Sprintf("Worker with name %s not found", q.WorkerName))
			}
			return nil, err
		}
		filter.WorkerID = &worker.ID
		filter.Ascending = true

		subject = report.Subject{Name: worker.FullName, Phone: worker.Phone}
		if worker.PersonalID != nil {
			subject.PersonalID = *worker.PersonalID
		}
	}

	shifts, _, err := s.shifts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, apierror.NotFound("No shifts found for the report")
	}

	rows := make([]report.Row, len(shifts))
	for i, sh := range shifts {
		rows[i] = report.Row{
			Date:      sh.Date,
			StartHour: deref(sh.StartHour),
			EndHour:   deref(sh.EndHour),
			WorkType:  deref(sh.WorkType),
		}
		if sh.Company != nil {
			rows[i].CompanyName = sh.Company.Name
		}
		if sh.Worker != nil {
			rows[i].WorkerName = sh.Worker.FullName
		}
	}

	hebrew := q.Lang == "he"
	var shaper report.TextShaper = report.PassThrough{}
	if hebrew {
		shaper = report.WordReverser{}
	}

	data, err := report.NewRenderer(shaper).Render(subject, rows, report.Options{
		Hebrew: hebrew,
		// a multi-worker report must attribute each row
		WorkerColumn:   q.WorkerName == "",
		LogoPath:       s.cfg.LogoPath,
		HebrewFontPath: s.cfg.HebrewFontPath,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ReportFile{Data: data, SubjectName: subject.Name}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
