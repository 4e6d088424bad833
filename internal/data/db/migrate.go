package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/disha-labs/disha-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},
		&types.Profile{},

		// Reference catalog (seeded out-of-band)
		&types.College{},
		&types.Scholarship{},
		&types.CareerPath{},

		// User-scoped state
		&types.ChatConversation{},
		&types.ChatMessage{},
		&types.UserProgress{},
		&types.UserSavedItem{},
	); err != nil {
		return err
	}

	// AutoMigrate runs with FK creation disabled; cascades are declared
	// explicitly so deleting a user removes every row it owns.
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	constraints := []struct {
		name  string
		table string
		sql   string
	}{
		{"fk_user_token_user_id", "user_token", `ALTER TABLE "user_token" ADD CONSTRAINT "fk_user_token_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
		{"fk_profile_id", "profile", `ALTER TABLE "profile" ADD CONSTRAINT "fk_profile_id" FOREIGN KEY ("id") REFERENCES "user"("id") ON DELETE CASCADE`},
		{"fk_chat_conversation_user_id", "chat_conversation", `ALTER TABLE "chat_conversation" ADD CONSTRAINT "fk_chat_conversation_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
		{"fk_chat_message_conversation_id", "chat_message", `ALTER TABLE "chat_message" ADD CONSTRAINT "fk_chat_message_conversation_id" FOREIGN KEY ("conversation_id") REFERENCES "chat_conversation"("id") ON DELETE CASCADE`},
		{"fk_user_progress_user_id", "user_progress", `ALTER TABLE "user_progress" ADD CONSTRAINT "fk_user_progress_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
		{"fk_user_saved_item_user_id", "user_saved_item", `ALTER TABLE "user_saved_item" ADD CONSTRAINT "fk_user_saved_item_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		if db.Migrator().HasConstraint(c.table, c.name) {
			continue
		}
		if err := db.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}
