package catalog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListMiniPrograms(ctx context.Context) ([]MiniProgram, error) {
	query := `
		SELECT id, title, subtitle, price, description, video_url, image_url,
		       learn_list, receive_list, available_dates, created_at
		FROM programs_mini
		ORDER BY created_at ASC
	`

	var programs []MiniProgram
	err := r.db.SelectContext(ctx, &programs, query)
	if err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *repository) ListOtherPrograms(ctx context.Context) ([]OtherProgram, error) {
	query := `
		SELECT id, title, price, description, video_url, image_url,
		       trainers_count, available_dates, created_at
		FROM programs_other
		ORDER BY created_at ASC
	`

	var programs []OtherProgram
	err := r.db.SelectContext(ctx, &programs, query)
	if err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *repository) ListOnlineCourses(ctx context.Context) ([]OnlineCourse, error) {
	query := `
		SELECT id, title, price, description, video_url, image_url, created_at
		FROM courses_online
		ORDER BY created_at ASC
	`

	var courses []OnlineCourse
	err := r.db.SelectContext(ctx, &courses, query)
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *repository) ListFreeCourses(ctx context.Context) ([]FreeCourse, error) {
	query := `
		SELECT id, title, description, trainer_name, video_url, image_url, created_at
		FROM courses_free
		ORDER BY created_at ASC
	`

	var courses []FreeCourse
	err := r.db.SelectContext(ctx, &courses, query)
	if err != nil {
		return nil, err
	}

	return courses, nil
}

// PriceMap rebuilds the label -> price map from the three paid catalogs.
// Recomputed per call; there is no cached copy to invalidate.
func (r *repository) PriceMap(ctx context.Context) (PriceMap, error) {
	mini, err := r.ListMiniPrograms(ctx)
	if err != nil {
		return nil, err
	}

	other, err := r.ListOtherPrograms(ctx)
	if err != nil {
		return nil, err
	}

	online, err := r.ListOnlineCourses(ctx)
	if err != nil {
		return nil, err
	}

	return BuildPriceMap(mini, other, online), nil
}

func (r *repository) CreateMiniProgram(ctx context.Context, req CreateMiniProgramRequest) (*MiniProgram, error) {
	query := `
		INSERT INTO programs_mini (title, subtitle, price, description, video_url, image_url, learn_list, receive_list, available_dates)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, subtitle, price, description, video_url, image_url, learn_list, receive_list, available_dates, created_at
	`

	var p MiniProgram
	err := r.db.GetContext(ctx, &p, query,
		req.Title, req.Subtitle, req.Price, req.Description, req.VideoURL, req.ImageURL,
		pq.StringArray(req.LearnList), pq.StringArray(req.ReceiveList), pq.StringArray(req.AvailableDates))
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) CreateOtherProgram(ctx context.Context, req CreateOtherProgramRequest) (*OtherProgram, error) {
	query := `
		INSERT INTO programs_other (title, price, description, video_url, image_url, trainers_count, available_dates)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, price, description, video_url, image_url, trainers_count, available_dates, created_at
	`

	var p OtherProgram
	err := r.db.GetContext(ctx, &p, query,
		req.Title, req.Price, req.Description, req.VideoURL, req.ImageURL,
		req.TrainersCount, pq.StringArray(req.AvailableDates))
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) CreateOnlineCourse(ctx context.Context, req CreateOnlineCourseRequest) (*OnlineCourse, error) {
	query := `
		INSERT INTO courses_online (title, price, description, video_url, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, price, description, video_url, image_url, created_at
	`

	var c OnlineCourse
	err := r.db.GetContext(ctx, &c, query,
		req.Title, req.Price, req.Description, req.VideoURL, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) CreateFreeCourse(ctx context.Context, req CreateFreeCourseRequest) (*FreeCourse, error) {
	query := `
		INSERT INTO courses_free (title, description, trainer_name, video_url, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, trainer_name, video_url, image_url, created_at
	`

	var c FreeCourse
	err := r.db.GetContext(ctx, &c, query,
		req.Title, req.Description, req.TrainerName, req.VideoURL, req.ImageURL)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
