package books

import "time"

// Book is a catalog record keyed by ISBN. The three image URLs point at
// externally hosted cover renditions (small/medium/large).
type Book struct {
	ISBN              string    `json:"isbn"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	YearOfPublication int       `json:"year_of_publication"`
	Publisher         string    `json:"publisher"`
	ImageURLS         string    `json:"image_url_s"`
	ImageURLM         string    `json:"image_url_m"`
	ImageURLL         string    `json:"image_url_l"`
	CreatedAt         time.Time `json:"-"`
}
