package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
)

// GetCacheKey scopes chat context to the account, falling back to the
// anonymous session id
func GetCacheKey(guestID int, sessionID string) string {
	if guestID > 0 {
		return strconv.Itoa(guestID)
	}
	return sessionID
}

func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

var starPattern = regexp.MustCompile(`(\d)\s*star`)

func extractStarRating(query string) *int {
	match := starPattern.FindStringSubmatch(query)
	if len(match) < 2 {
		return nil
	}
	rating, err := strconv.Atoi(match[1])
	if err != nil || rating < 1 || rating > 5 {
		return nil
	}
	return &rating
}

var (
	underPattern = regexp.MustCompile(`(?:under|below|max|up to)\s*(\d+)`)
	// "from" is left out here, it would swallow the year of a date
	overPattern = regexp.MustCompile(`(?:over|above|at least|more than)\s*(\d+)`)
)

// extractPriceRange maps a spoken price bound onto the search buckets
func extractPriceRange(query string) string {
	if m := underPattern.FindStringSubmatch(query); len(m) == 2 {
		limit, _ := strconv.Atoi(m[1])
		switch {
		case limit <= 500:
			return constants.PriceRangeLow
		case limit <= 1000:
			return constants.PriceRangeMid
		default:
			return constants.PriceRangeHigh
		}
	}
	if m := overPattern.FindStringSubmatch(query); len(m) == 2 {
		limit, _ := strconv.Atoi(m[1])
		switch {
		case limit >= 2000:
			return constants.PriceRangePremium
		case limit >= 1000:
			return constants.PriceRangeHigh
		case limit >= 500:
			return constants.PriceRangeMid
		}
	}
	return ""
}

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

func extractDates(query string) (checkIn, checkOut *time.Time) {
	matches := datePattern.FindAllString(query, 2)
	if len(matches) >= 1 {
		if t, err := time.Parse(apiDateLayout, matches[0]); err == nil {
			checkIn = &t
		}
	}
	if len(matches) >= 2 {
		if t, err := time.Parse(apiDateLayout, matches[1]); err == nil {
			checkOut = &t
		}
	}
	return checkIn, checkOut
}

// matchRoomType resolves a fuzzy room-type mention against the catalog
func matchRoomType(query string, types []models.RoomType) *uint {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	byName := make(map[string]uint, len(types))
	for i, rt := range types {
		name := normalizeInput(rt.Name)
		names[i] = name
		byName[name] = rt.ID
	}

	matcher := createMatcher(names)
	closest := matcher.Closest(query)
	if closest == "" {
		return nil
	}

	// closestmatch happily returns a bad match for unrelated input, so gate
	// it on containment or string similarity
	if !strings.Contains(query, closest) {
		best := 0.0
		for _, word := range strings.Fields(query) {
			if s := calculateSimilarity(word, closest); s > best {
				best = s
			}
		}
		if best < 0.75 {
			return nil
		}
	}

	id := byName[closest]
	return &id
}

// ExtractChatFilters parses one chat turn into search filters. It returns nil
// when the turn carries no recognizable search intent.
func ExtractChatFilters(input string, types []models.RoomType) *dto.ChatFilters {
	query := normalizeInput(input)

	filters := &dto.ChatFilters{
		RoomTypeID: matchRoomType(query, types),
		PriceRange: extractPriceRange(query),
		StarRating: extractStarRating(query),
	}
	filters.CheckIn, filters.CheckOut = extractDates(query)

	if filters.RoomTypeID == nil && filters.PriceRange == "" &&
		filters.StarRating == nil && filters.CheckIn == nil && filters.CheckOut == nil {
		return nil
	}
	return filters
}

// faqEntry is a canned answer matched against the guest's wording
type faqEntry struct {
	keywords []string
	answer   string
}

var faqEntries = []faqEntry{
	{
		keywords: []string{"check in time", "checkin time", "when can i check in", "arrival time"},
		answer:   "Check-in opens at 14:00 on your booking date. Early check-in depends on room readiness.",
	},
	{
		keywords: []string{"check out time", "checkout time", "when do i check out", "departure time"},
		answer:   "Check-out is at 12:00 on your last day. Late check-out can be arranged at the front desk.",
	},
	{
		keywords: []string{"cancel", "cancellation", "cancel my booking", "refund"},
		answer:   "You can cancel a booking free of charge within 3 days of its start date from your booking history.",
	},
	{
		keywords: []string{"payment", "pay", "how to pay", "bank transfer", "qr"},
		answer:   "We accept cash, bank transfer and QR payment at checkout.",
	},
}

// answerFAQ returns a canned answer when the message is close enough to a
// known question, empty string otherwise
func answerFAQ(input string) string {
	query := normalizeInput(input)
	for _, entry := range faqEntries {
		for _, kw := range entry.keywords {
			if strings.Contains(query, kw) || calculateSimilarity(query, kw) >= 0.8 {
				return entry.answer
			}
		}
	}
	return ""
}

// RunChatTurn handles one chat message and produces the reply. Search turns
// merge into the session's remembered filters; "reset" clears them.
func RunChatTurn(ctx context.Context, rdb *redis.Client, redisKey, guestInput string) dto.ChatReply {
	if strings.TrimSpace(strings.ToLower(guestInput)) == "reset" {
		if err := ClearLastFilters(ctx, rdb, redisKey); err != nil {
			log.Println("ClearLastFilters:", err)
		}
		return dto.ChatReply{Answer: "Search filters cleared."}
	}

	if answer := answerFAQ(guestInput); answer != "" {
		return dto.ChatReply{Answer: answer}
	}

	var types []models.RoomType
	if err := config.DB.Find(&types).Error; err != nil {
		return dto.ChatReply{Answer: "Something went wrong, please try again."}
	}

	filters := ExtractChatFilters(guestInput, types)
	if filters == nil {
		return dto.ChatReply{Answer: "I can help you find a room. Try something like \"double room under 1000 from 2026-09-10 to 2026-09-12\"."}
	}

	if prev, err := GetLastFilters(ctx, rdb, redisKey); err == nil && prev != nil {
		filters = MergeFilters(prev, filters)
	}
	_ = SaveLastFilters(ctx, rdb, redisKey, filters)

	rooms, bookings, err := FetchRoomSnapshot(ctx)
	if err != nil {
		return dto.ChatReply{Answer: "Search failed: " + err.Error()}
	}

	results := ListAvailableRooms(rooms, bookings, dto.SearchOptions{
		Today:      time.Now(),
		CheckIn:    filters.CheckIn,
		CheckOut:   filters.CheckOut,
		RoomTypeID: filters.RoomTypeID,
		PriceRange: filters.PriceRange,
		StarRating: filters.StarRating,
		SortOrder:  constants.SortPriceLowHigh,
	})

	if len(results) == 0 {
		return dto.ChatReply{Answer: "No rooms match your current filters. Try different dates or loosen the filters, or send \"reset\" to start over."}
	}

	var summaries []dto.RoomSummary
	for _, r := range results {
		summaries = append(summaries, dto.RoomSummary{
			ID:            r.ID,
			Name:          r.Name,
			RoomTypeName:  r.RoomTypeName,
			RoomTypePrice: r.RoomTypePrice,
			StarRating:    r.StarRating,
			Avatar:        r.Avatar,
		})
	}
	return dto.ChatReply{Rooms: summaries}
}

// HandleGuestMessageWS runs one chat turn and returns the frames to send back
// over the websocket, text first, then the room cards as JSON.
func HandleGuestMessageWS(
	ctx context.Context,
	rdb *redis.Client,
	redisKey string,
	guestID int,
	guestInput string,
) [][]byte {
	reply := RunChatTurn(ctx, rdb, redisKey, guestInput)

	var responses [][]byte
	if reply.Answer != "" {
		responses = append(responses, []byte(reply.Answer))
	}
	if len(reply.Rooms) > 0 {
		roomJSON, err := json.Marshal(reply.Rooms)
		if err != nil {
			responses = append(responses, []byte("Could not send the room results."))
		} else {
			responses = append(responses, roomJSON)
		}
	}
	return responses
}

func SaveChatHistoryToDB(guestID int, sessionID, sender, messageType, content string) error {
	chat := models.ChatHistory{
		GuestID:     guestID,
		SessionID:   sessionID,
		Sender:      sender,
		MessageType: messageType,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	return config.DB.Create(&chat).Error
}

// GetChatHistory returns a session's messages oldest first
func GetChatHistory(guestID int, sessionID string, limit int) ([]models.ChatHistory, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := config.DB.Model(&models.ChatHistory{})
	if guestID > 0 {
		query = query.Where("guest_id = ?", guestID)
	} else {
		query = query.Where("session_id = ?", sessionID)
	}

	var history []models.ChatHistory
	err := query.Order("created_at ASC").Limit(limit).Find(&history).Error
	return history, err
}
