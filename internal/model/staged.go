package model

// StagedFile is a locally buffered upload awaiting its remote upload.
// It must never survive the request that created it.
type StagedFile struct {
	LocalPath    string
	OriginalName string
	MimeType     string
	SizeBytes    int64
}

// Slots groups the staged files of one request by form field.
// MultipleFiles keeps submission order.
type Slots struct {
	File1         *StagedFile
	File2         *StagedFile
	MultipleFiles []*StagedFile
}

// Each returns every staged file present in the slots, multi-slot last.
func (s Slots) Each() []*StagedFile {
	var files []*StagedFile
	if s.File1 != nil {
		files = append(files, s.File1)
	}
	if s.File2 != nil {
		files = append(files, s.File2)
	}
	files = append(files, s.MultipleFiles...)
	return files
}

// IngestedSlots mirrors Slots after every file landed in remote storage.
type IngestedSlots struct {
	File1         *Attachment
	File2         *Attachment
	MultipleFiles []Attachment
}
