package valueobjects

import "fmt"

type ReadStatus string

const (
	ReadStatusUnread ReadStatus = "unread"
	ReadStatusRead   ReadStatus = "read"
)

func (s ReadStatus) String() string {
	return string(s)
}

func (s ReadStatus) IsValid() bool {
	return s == ReadStatusUnread || s == ReadStatusRead
}

func (s ReadStatus) IsRead() bool {
	return s == ReadStatusRead
}

// ReadStatusFromBool maps the persisted is_read flag.
func ReadStatusFromBool(isRead bool) ReadStatus {
	if isRead {
		return ReadStatusRead
	}
	return ReadStatusUnread
}

func NewReadStatus(str string) (ReadStatus, error) {
	s := ReadStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid read status: %s", str)
	}
	return s, nil
}
