package entity

// Question is a quiz question with up to five proposed answers.
type Question struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	OptionOne   string `json:"option_one"`
	OptionTwo   string `json:"option_two"`
	OptionThree string `json:"option_three"`
	OptionFour  string `json:"option_four"`
	OptionFive  string `json:"option_five"`
	Answer      string `json:"answer"`
}
