package model

// Member is an API consumer. Checks made through the API are recorded against it.
type Member struct {
	// Primary key - IDENTITY on Oracle, INTEGER PRIMARY KEY on SQLite
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email       string `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_member_email"` // 이메일 (unique)
	Name        string `gorm:"column:name;type:VARCHAR2(100);not null"`                               // 이름
	PhoneNumber string `gorm:"column:phone_number;type:VARCHAR2(20);not null"`                        // 방글라데시 휴대폰 번호
	Password    string `gorm:"column:password;type:VARCHAR2(60);not null"`                           // bcrypt 해시

	Timestamps
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a new Member. password must already be hashed.
func NewMember(name, email, phoneNumber, password string) *Member {
	return &Member{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    password,
	}
}
