package domain

type Report struct {
	FileName    string
	ContentType string
	Data        []byte
}
