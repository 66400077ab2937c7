package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/duckmart/segmentation-service/internal/domain"
)

var (
	subscriptionPlans = []string{"Basic", "Premium", "Enterprise", "Free"}
	deviceTypes       = []string{"Desktop", "Mobile", "Tablet"}
	genders           = []string{"Male", "Female", "Other"}
	locations         = []string{
		"California", "New York", "Texas", "Florida", "Illinois",
		"Pennsylvania", "Ohio", "Georgia", "North Carolina", "Michigan",
	}
	eventNames = []string{
		"LOGIN", "LOGOUT", "PURCHASE_MADE", "ADDED_TO_CART", "REMOVED_FROM_CART",
		"VIEW_PRODUCT", "SEARCH", "PROFILE_UPDATE", "PASSWORD_CHANGE", "EMAIL_OPENED",
	}
)

// Generator produces synthetic users and events. A non-zero seed makes
// the output reproducible within the same day: date ranges are anchored
// to a day-truncated reference time so two runs draw from the same range.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(uint64(seed)),
		now:   time.Now().Truncate(24 * time.Hour),
	}
}

// Users generates n users with sequential identities starting at 1,
// signed up within the last two years.
func (g *Generator) Users(n int) []*domain.User {
	now := g.now
	users := make([]*domain.User, 0, n)

	for i := 1; i <= n; i++ {
		users = append(users, &domain.User{
			UserID:           int64(i),
			Name:             g.faker.Name(),
			Age:              g.faker.Number(18, 70),
			Gender:           g.faker.RandomString(genders),
			Location:         g.faker.RandomString(locations),
			SignupDate:       g.faker.DateRange(now.AddDate(-2, 0, 0), now),
			SubscriptionPlan: g.faker.RandomString(subscriptionPlans),
			DeviceType:       g.faker.RandomString(deviceTypes),
		})
	}

	return users
}

// Events streams n synthetic events for the given user population into
// out and closes it when done. Timestamps fall within the last year.
func (g *Generator) Events(out chan<- *domain.Event, userCount, n int) {
	defer close(out)

	now := g.now
	for i := 0; i < n; i++ {
		out <- &domain.Event{
			UserID:    int64(g.faker.Number(1, userCount)),
			EventName: g.faker.RandomString(eventNames),
			Timestamp: g.faker.DateRange(now.AddDate(-1, 0, 0), now),
		}
	}
}
