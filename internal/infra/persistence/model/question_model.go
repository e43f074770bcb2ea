package model

// QuestionModel mirrors the 'questions' table.
type QuestionModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Text        string `gorm:"column:question;type:text;not null"`
	OptionOne   string `gorm:"type:text"`
	OptionTwo   string `gorm:"type:text"`
	OptionThree string `gorm:"type:text"`
	OptionFour  string `gorm:"type:text"`
	OptionFive  string `gorm:"type:text"`
	Answer      string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}
