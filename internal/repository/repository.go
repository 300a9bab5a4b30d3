package repository

import "gorm.io/gorm"

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	Staff      StaffRepository
	Student    StudentRepository
	Attendance AttendanceRepository
	Notice     NoticeRepository
	Memo       MemoRepository
}

// NewRepository Repository 집합 생성
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Staff:      NewStaffRepo(db),
		Student:    NewStudentRepo(db),
		Attendance: NewAttendanceRepo(db),
		Notice:     NewNoticeRepo(db),
		Memo:       NewMemoRepo(db),
	}
}
