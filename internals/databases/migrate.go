package database

import (
	"log"

	classModel "sekolahku_backend/internals/features/academics/classes/model"
	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	parentModel "sekolahku_backend/internals/features/people/parents/model"
	studentModel "sekolahku_backend/internals/features/people/students/model"
	teacherModel "sekolahku_backend/internals/features/people/teachers/model"
	assignmentModel "sekolahku_backend/internals/features/records/assignments/model"
	attendanceModel "sekolahku_backend/internals/features/records/attendances/model"
	enrollmentModel "sekolahku_backend/internals/features/records/enrollments/model"
	submissionModel "sekolahku_backend/internals/features/records/submissions/model"
	adminModel "sekolahku_backend/internals/features/users/admins/model"
	notificationModel "sekolahku_backend/internals/features/users/notifications/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
)

// Migrate membuat semua tabel saat startup (urut dari entitas induk ke anak).
func Migrate() {
	log.Println("🛠  AutoMigrate tabel...")
	if err := DB.AutoMigrate(
		&adminModel.AdminModel{},
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&teacherModel.TeacherModel{},
		&parentModel.ParentModel{},
		&courseModel.CourseModel{},
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&classModel.ClassSubjectModel{},
		&enrollmentModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&assignmentModel.AssignmentModel{},
		&submissionModel.SubmissionModel{},
		&feeModel.FeeModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Semua tabel siap.")
}
