package validation

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/news-forum-api/internal/apperror"
	"github.com/news-forum-api/internal/models"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Messages returned to clients for rejected input.
const (
	MsgArticleIDType      = "article ID wrong type"
	MsgCommentIDType      = "comment ID wrong type"
	MsgURLIDType          = "ID used in URL wrong type"
	MsgInvalidSortColumn  = "invalid column name to sort by"
	MsgInvalidOrder       = "invalid ordering request"
	MsgInvalidTopic       = "invalid topic name used"
	MsgInvalidLimit       = "invalid limit value"
	MsgInvalidColumnNames = "invalid column names"
	MsgVotesFormat        = "votes data not sent in correct format"
)

// SortColumn is an article column name that passed the whitelist.
type SortColumn string

// SortOrder is "ASC" or "DESC".
type SortOrder string

const (
	DefaultSortColumn SortColumn = "created_at"
	OrderAsc          SortOrder  = "ASC"
	OrderDesc         SortOrder  = "DESC"
	DefaultSortOrder             = OrderDesc
)

// SortableColumns defines the columns GET /api/articles may sort by
var SortableColumns = map[string]bool{
	"author":          true,
	"title":           true,
	"article_id":      true,
	"topic":           true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

// ParseID accepts a token made only of decimal digits and returns its value.
// Anything else, including an empty token, a sign or surrounding whitespace,
// fails with a 400 carrying msg.
func ParseID(token, msg string) (int64, error) {
	if !digitsRegex.MatchString(token) {
		return 0, apperror.BadRequest(msg)
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		// out of range
		return 0, apperror.BadRequest(msg)
	}
	return id, nil
}

// ParseArticleID validates an :article_id path parameter.
func ParseArticleID(token string) (int64, error) {
	return ParseID(token, MsgArticleIDType)
}

// ParseCommentID validates a :comment_id path parameter.
func ParseCommentID(token string) (int64, error) {
	return ParseID(token, MsgCommentIDType)
}

// CheckSortColumn returns the column to sort articles by, defaulting to
// created_at when raw is empty.
func CheckSortColumn(raw string) (SortColumn, error) {
	if raw == "" {
		return DefaultSortColumn, nil
	}
	if !SortableColumns[raw] {
		return "", apperror.BadRequest(MsgInvalidSortColumn)
	}
	return SortColumn(raw), nil
}

// CheckSortOrder matches asc/desc case-insensitively, defaulting to DESC.
func CheckSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(raw) {
	case "":
		return DefaultSortOrder, nil
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return "", apperror.BadRequest(MsgInvalidOrder)
	}
}

// ParseLimit returns the row cap for a listing. Zero means no cap.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if !digitsRegex.MatchString(raw) {
		return 0, apperror.BadRequest(MsgInvalidLimit)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest(MsgInvalidLimit)
	}
	return n, nil
}

// TopicSet is the set of topic slugs currently in the store.
type TopicSet map[string]bool

// NewTopicSet builds a TopicSet from a fetch of all slugs.
func NewTopicSet(slugs []string) TopicSet {
	set := make(TopicSet, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return set
}

// Check fails with a 404 when topic is not a known slug.
func (s TopicSet) Check(topic string) error {
	if !s[topic] {
		return apperror.NotFound(MsgInvalidTopic)
	}
	return nil
}

var newCommentFields = []string{"body", "username"}

// ParseNewComment decodes a comment payload. The object must have exactly
// the keys username and body, both holding non-empty strings.
func ParseNewComment(raw []byte) (*models.NewComment, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperror.BadRequest(MsgInvalidColumnNames)
	}
	if !hasExactKeys(fields, newCommentFields) {
		return nil, apperror.BadRequest(MsgInvalidColumnNames)
	}

	username, ok := nonEmptyString(fields["username"])
	if !ok {
		return nil, apperror.BadRequest("invalid value for username")
	}
	body, ok := nonEmptyString(fields["body"])
	if !ok {
		return nil, apperror.BadRequest("invalid value for body")
	}

	return &models.NewComment{Username: username, Body: body}, nil
}

// ParseVoteUpdate decodes {"inc_votes": <integer>}.
func ParseVoteUpdate(raw []byte) (*models.VoteUpdate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperror.BadRequest(MsgVotesFormat)
	}
	if !hasExactKeys(fields, []string{"inc_votes"}) {
		return nil, apperror.BadRequest(MsgVotesFormat)
	}

	dec := json.NewDecoder(bytes.NewReader(fields["inc_votes"]))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, apperror.BadRequest(MsgVotesFormat)
	}
	num, ok := v.(json.Number)
	if !ok {
		return nil, apperror.BadRequest(MsgVotesFormat)
	}
	inc, err := strconv.Atoi(num.String())
	if err != nil {
		return nil, apperror.BadRequest(MsgVotesFormat)
	}

	return &models.VoteUpdate{IncVotes: inc}, nil
}

// hasExactKeys reports whether fields has precisely the keys in want.
func hasExactKeys(fields map[string]json.RawMessage, want []string) bool {
	if len(fields) != len(want) {
		return false
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sorted := append([]string(nil), want...)
	sort.Strings(sorted)
	for i := range keys {
		if keys[i] != sorted[i] {
			return false
		}
	}
	return true
}

func nonEmptyString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}
