package catalog

import "context"

type Repository interface {
	ListMiniPrograms(ctx context.Context) ([]MiniProgram, error)
	ListOtherPrograms(ctx context.Context) ([]OtherProgram, error)
	ListOnlineCourses(ctx context.Context) ([]OnlineCourse, error)
	ListFreeCourses(ctx context.Context) ([]FreeCourse, error)
	PriceMap(ctx context.Context) (PriceMap, error)

	CreateMiniProgram(ctx context.Context, req CreateMiniProgramRequest) (*MiniProgram, error)
	CreateOtherProgram(ctx context.Context, req CreateOtherProgramRequest) (*OtherProgram, error)
	CreateOnlineCourse(ctx context.Context, req CreateOnlineCourseRequest) (*OnlineCourse, error)
	CreateFreeCourse(ctx context.Context, req CreateFreeCourseRequest) (*FreeCourse, error)
}
