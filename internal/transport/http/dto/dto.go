package dto

type VideoCreateDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url,max=500"`
}

type PlaylistCreateDTO struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description"`
	URLThumb    string   `json:"url_thumb" binding:"required,url,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	VideoIDs    []uint   `json:"video_ids"`
}

type FormationCreateDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
}

type LectureCreateDTO struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// ListQuery carries the pagination window shared by every list route.
type ListQuery struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=10" binding:"gte=1,lte=100"`
}
