package metadomain

type Ad struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdCreative carrega as referências de imagem de um criativo. Quando não há
// image_url direta, a imagem pode estar aninhada no link_data da
// object_story_spec.
type AdCreative struct {
	ID              string           `json:"id"`
	ImageURL        string           `json:"image_url"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	LinkData *LinkData `json:"link_data"`
}

type LinkData struct {
	Picture string `json:"picture"`
}
