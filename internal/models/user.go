package models

// User is identified by email instead of a username. The password is only
// ever stored as a bcrypt hash.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;size:254;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"size:250"`
	IsActive     bool   `gorm:"default:true"`
	IsStaff      bool   `gorm:"default:false"`
	IsSuperuser  bool   `gorm:"default:false"`

	// Relations
	Token   *AuthToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews []Review   `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}
