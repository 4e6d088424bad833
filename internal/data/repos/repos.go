package repos

import (
	"gorm.io/gorm"

	"github.com/disha-labs/disha-backend/internal/data/repos/auth"
	"github.com/disha-labs/disha-backend/internal/data/repos/catalog"
	"github.com/disha-labs/disha-backend/internal/data/repos/chat"
	"github.com/disha-labs/disha-backend/internal/data/repos/progress"
	"github.com/disha-labs/disha-backend/internal/data/repos/saved"
	"github.com/disha-labs/disha-backend/internal/data/repos/user"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type UserRepo = user.UserRepo
type ProfileRepo = user.ProfileRepo
type UserTokenRepo = auth.UserTokenRepo

type CollegeRepo = catalog.CollegeRepo
type CollegeFilter = catalog.CollegeFilter
type ScholarshipRepo = catalog.ScholarshipRepo
type ScholarshipFilter = catalog.ScholarshipFilter
type CareerPathRepo = catalog.CareerPathRepo
type CareerPathFilter = catalog.CareerPathFilter

type ChatConversationRepo = chat.ChatConversationRepo
type ChatMessageRepo = chat.ChatMessageRepo

type UserProgressRepo = progress.UserProgressRepo
type ProgressSummary = progress.Summary

type UserSavedItemRepo = saved.UserSavedItemRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return user.NewUserRepo(db, baseLog)
}
func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return user.NewProfileRepo(db, baseLog)
}
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}
func NewCollegeRepo(db *gorm.DB, baseLog *logger.Logger) CollegeRepo {
	return catalog.NewCollegeRepo(db, baseLog)
}
func NewScholarshipRepo(db *gorm.DB, baseLog *logger.Logger) ScholarshipRepo {
	return catalog.NewScholarshipRepo(db, baseLog)
}
func NewCareerPathRepo(db *gorm.DB, baseLog *logger.Logger) CareerPathRepo {
	return catalog.NewCareerPathRepo(db, baseLog)
}
func NewChatConversationRepo(db *gorm.DB, baseLog *logger.Logger) ChatConversationRepo {
	return chat.NewChatConversationRepo(db, baseLog)
}
func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	return chat.NewChatMessageRepo(db, baseLog)
}
func NewUserProgressRepo(db *gorm.DB, baseLog *logger.Logger) UserProgressRepo {
	return progress.NewUserProgressRepo(db, baseLog)
}
func NewUserSavedItemRepo(db *gorm.DB, baseLog *logger.Logger) UserSavedItemRepo {
	return saved.NewUserSavedItemRepo(db, baseLog)
}
