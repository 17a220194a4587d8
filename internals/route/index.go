// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "sekolahku_backend/internals/features/academics/classes/route"
	courseRoute "sekolahku_backend/internals/features/academics/courses/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subjects/route"
	feeRoute "sekolahku_backend/internals/features/finance/fees/route"
	parentRoute "sekolahku_backend/internals/features/people/parents/route"
	studentRoute "sekolahku_backend/internals/features/people/students/route"
	teacherRoute "sekolahku_backend/internals/features/people/teachers/route"
	assignmentRoute "sekolahku_backend/internals/features/records/assignments/route"
	attendanceRoute "sekolahku_backend/internals/features/records/attendances/route"
	enrollmentRoute "sekolahku_backend/internals/features/records/enrollments/route"
	submissionRoute "sekolahku_backend/internals/features/records/submissions/route"
	adminRoute "sekolahku_backend/internals/features/users/admins/route"
	notificationRoute "sekolahku_backend/internals/features/users/notifications/route"
	userRoute "sekolahku_backend/internals/features/users/users/route"
)

// SetupRoutes memasang semua route fitur di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "sekolahku-backend",
			"status":  "running",
		})
	})

	api := app.Group("/api")

	log.Println("[INFO] Mounting user routes...")
	adminRoute.AdminRoutes(api, db)
	userRoute.UserRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)

	log.Println("[INFO] Mounting people routes...")
	studentRoute.StudentRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	parentRoute.ParentRoutes(api, db)

	log.Println("[INFO] Mounting academic routes...")
	courseRoute.CourseRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)

	log.Println("[INFO] Mounting record routes...")
	enrollmentRoute.EnrollmentRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	assignmentRoute.AssignmentRoutes(api, db)
	submissionRoute.SubmissionRoutes(api, db)

	log.Println("[INFO] Mounting finance routes...")
	feeRoute.FeeRoutes(api, db)

	log.Println("✅ Semua route berhasil dipasang")
}
