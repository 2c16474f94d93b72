package utils

import (
	"log"

	"courseverse/database"
	"courseverse/models"
	courseModels "courseverse/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeRatingScheduler sets up the nightly course-rating recompute
func InitializeRatingScheduler() {
	log.Println("[RATING-SCHEDULER] Initializing rating scheduler...")

	c := cron.New()

	// Run daily at 2 AM to fold newly approved reviews into course ratings
	c.AddFunc("0 2 * * *", func() {
		log.Println("[RATING-SCHEDULER] Running daily rating recompute...")
		RecomputeCourseRatings()
	})

	c.Start()
	log.Println("[RATING-SCHEDULER] Rating scheduler started - runs daily at 2 AM")
}

// RecomputeCourseRatings averages approved review ratings per course
func RecomputeCourseRatings() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[RATING-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	for _, course := range courses {
		var avg float64
		err := db.Model(&models.Review{}).
			Where("course_id = ? AND status = ? AND is_deleted = ?", course.ID, models.ReviewApproved, false).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&avg).Error
		if err != nil {
			log.Printf("[RATING-SCHEDULER] Error averaging reviews for course %d: %v", course.ID, err)
			continue
		}

		if err := db.Model(&courseModels.Course{}).
			Where("id = ?", course.ID).
			Update("rating", avg).Error; err != nil {
			log.Printf("[RATING-SCHEDULER] Error updating rating for course %d: %v", course.ID, err)
		}
	}

	log.Printf("[RATING-SCHEDULER] Recomputed ratings for %d courses", len(courses))
}
