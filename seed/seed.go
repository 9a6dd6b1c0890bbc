package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	models "instaclone-core/model"
	"instaclone-core/repository"
)

// Stores bundles the repositories the seed writes into.
type Stores struct {
	Users         repository.UserRepository
	Feed          repository.FeedRepository
	Stories       repository.StoryRepository
	Follows       repository.FollowRepository
	Notifications repository.NotificationRepository
}

// Seeded reports what Load created, most importantly the demo viewer the
// login endpoint hands tokens out for.
type Seeded struct {
	Viewer  models.User
	Users   []models.User
	Posts   []models.Post
	Stories []models.Story
}

// ID derives a stable id for a seeded entity so restarts and tests see the
// same dataset.
func ID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("instaclone/"+kind+"/"+name))
}

type seedUser struct {
	userName       string
	fullName       string
	avatar         string
	bio            string
	website        string
	postsCount     int32
	followersCount int32
	followingCount int32
}

var seedUsers = []seedUser{
	{
		userName:       "your_username",
		fullName:       "Your Full Name",
		avatar:         "https://via.placeholder.com/150",
		bio:            "🌟 Living my best life\n📍 San Francisco\n💻 Developer",
		website:        "www.yourwebsite.com",
		postsCount:     42,
		followersCount: 1250,
		followingCount: 180,
	},
	{userName: "john_doe", fullName: "John Doe", avatar: "https://via.placeholder.com/50", followersCount: 1250},
	{userName: "jane_smith", fullName: "Jane Smith", avatar: "https://via.placeholder.com/50", followersCount: 890},
	{userName: "mike_wilson", fullName: "Mike Wilson", avatar: "https://via.placeholder.com/50", followersCount: 2340},
	{userName: "sarah_jones", fullName: "Sarah Jones", avatar: "https://via.placeholder.com/40"},
	{userName: "alex_brown", fullName: "Alex Brown", avatar: "https://via.placeholder.com/40"},
	{userName: "david_clark", fullName: "David Clark", avatar: "https://via.placeholder.com/60"},
	{userName: "emily_davis", fullName: "Emily Davis", avatar: "https://via.placeholder.com/60"},
	{userName: "ryan_miller", fullName: "Ryan Miller", avatar: "https://via.placeholder.com/60"},
}

// Load populates freshly constructed stores with the demo dataset the app
// ships with. It is invoked once at startup; tests build their own stores
// and call it (or not) per test, so there is no hidden process-wide state.
func Load(ctx context.Context, stores Stores, now time.Time) (*Seeded, error) {
	seeded := &Seeded{}

	for i, su := range seedUsers {
		user := models.User{
			ID:             ID("user", su.userName),
			UserName:       su.userName,
			FullName:       su.fullName,
			Email:          su.userName + "@example.com",
			CreatedAt:      now.Add(-time.Duration(30+i) * 24 * time.Hour),
			PostsCount:     su.postsCount,
			FollowersCount: su.followersCount,
			FollowingCount: su.followingCount,
		}
		if su.avatar != "" {
			avatar := su.avatar
			user.ProfilePictureURL = &avatar
		}
		if su.bio != "" {
			bio := su.bio
			user.Bio = &bio
		}
		if su.website != "" {
			website := su.website
			user.WebsiteURL = &website
		}

		created, err := stores.Users.Create(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", su.userName, err)
		}
		seeded.Users = append(seeded.Users, *created)
	}
	seeded.Viewer = seeded.Users[0]
	viewerID := seeded.Viewer.ID

	if err := seedPosts(ctx, stores, seeded, now); err != nil {
		return nil, err
	}
	if err := seedStories(ctx, stores, seeded, viewerID); err != nil {
		return nil, err
	}
	if err := seedSocialGraph(ctx, stores, viewerID, now); err != nil {
		return nil, err
	}

	return seeded, nil
}

func seedPosts(ctx context.Context, stores Stores, seeded *Seeded, now time.Time) error {
	viewerID := seeded.Viewer.ID

	posts := []struct {
		author   string
		imageURL string
		caption  string
		likes    int32
		likedBy  bool
		age      time.Duration
	}{
		{author: "john_doe", imageURL: "https://picsum.photos/400/400?random=1", caption: "Beautiful sunset today! 🌅", likes: 42, age: 2 * time.Hour},
		{author: "jane_smith", imageURL: "https://picsum.photos/400/400?random=2", caption: "Coffee time ☕️ #mondayvibes", likes: 128, likedBy: true, age: 4 * time.Hour},
		{author: "mike_wilson", imageURL: "https://picsum.photos/400/400?random=3", caption: "Amazing architecture 🏛️", likes: 89, age: 26 * time.Hour},
	}

	for _, sp := range posts {
		caption := sp.caption
		likes := sp.likes
		if sp.likedBy {
			// Seed one short so the viewer's toggle below lands on the
			// advertised count with a real like row behind it.
			likes--
		}

		post := models.Post{
			ID:         ID("post", sp.author+"/"+sp.imageURL),
			AuthorID:   ID("user", sp.author),
			ImageURL:   sp.imageURL,
			Caption:    &caption,
			CreatedAt:  now.Add(-sp.age),
			LikesCount: likes,
		}

		created, err := stores.Feed.CreatePost(ctx, post)
		if err != nil {
			return fmt.Errorf("failed to seed post by %s: %w", sp.author, err)
		}

		if sp.likedBy {
			created, err = stores.Feed.TogglePostLike(ctx, viewerID, created.ID, now.Add(-sp.age/2))
			if err != nil {
				return fmt.Errorf("failed to seed like on post by %s: %w", sp.author, err)
			}
		}
		seeded.Posts = append(seeded.Posts, *created)
	}

	// A short comment thread under the sunset post.
	sunsetID := seeded.Posts[0].ID
	comment, err := stores.Feed.CreateComment(ctx, models.Comment{
		ID:        ID("comment", "mike_wilson/amazing-shot"),
		PostID:    sunsetID,
		AuthorID:  ID("user", "mike_wilson"),
		Content:   "Amazing shot! 📸",
		CreatedAt: now.Add(-100 * time.Minute),
	})
	if err != nil {
		return fmt.Errorf("failed to seed comment: %w", err)
	}
	_, err = stores.Feed.CreateComment(ctx, models.Comment{
		ID:              ID("comment", "john_doe/thanks"),
		PostID:          sunsetID,
		AuthorID:        ID("user", "john_doe"),
		ParentCommentID: &comment.ID,
		Content:         "Thanks Mike! 🙏",
		CreatedAt:       now.Add(-90 * time.Minute),
	})
	if err != nil {
		return fmt.Errorf("failed to seed reply: %w", err)
	}

	return nil
}

func seedStories(ctx context.Context, stores Stores, seeded *Seeded, viewerID uuid.UUID) error {
	// Tray order is decided here, once: own story first, then fresh
	// unviewed stories ahead of the rest. Viewing later never reorders.
	stories := []struct {
		owner    string
		avatar   string
		hasNew   bool
		isViewed bool
	}{
		{owner: "your_username", avatar: "https://picsum.photos/60/60?random=me"},
		{owner: "john_doe", avatar: "https://picsum.photos/60/60?random=1", hasNew: true},
		{owner: "mike_wilson", avatar: "https://picsum.photos/60/60?random=3", hasNew: true},
		{owner: "jane_smith", avatar: "https://picsum.photos/60/60?random=2", hasNew: true, isViewed: true},
		{owner: "sarah_jones", avatar: "https://picsum.photos/60/60?random=4", hasNew: true, isViewed: true},
	}

	for _, ss := range stories {
		story := models.Story{
			ID:                ID("story", ss.owner),
			OwnerID:           ID("user", ss.owner),
			ProfilePictureURL: ss.avatar,
			HasNewStory:       ss.hasNew,
		}

		created, err := stores.Stories.CreateStory(ctx, story)
		if err != nil {
			return fmt.Errorf("failed to seed story for %s: %w", ss.owner, err)
		}
		if ss.isViewed {
			if _, err := stores.Stories.MarkViewed(ctx, viewerID, created.ID); err != nil {
				return fmt.Errorf("failed to seed viewed story for %s: %w", ss.owner, err)
			}
		}
		seeded.Stories = append(seeded.Stories, *created)
	}

	return nil
}

func seedSocialGraph(ctx context.Context, stores Stores, viewerID uuid.UUID, now time.Time) error {
	// jane_smith already follows the viewer; alex_brown is waiting on a
	// decision. Seeding goes through the repositories directly so no
	// notifications are fabricated twice.
	janeID := ID("user", "jane_smith")
	if _, err := stores.Follows.Request(ctx, janeID, viewerID, now.Add(-2*time.Hour)); err != nil {
		return fmt.Errorf("failed to seed follow edge: %w", err)
	}
	if _, err := stores.Follows.Decide(ctx, janeID, viewerID, models.FollowDecisionAccept, now.Add(-105*time.Minute)); err != nil {
		return fmt.Errorf("failed to seed follow decision: %w", err)
	}

	alexID := ID("user", "alex_brown")
	if _, err := stores.Follows.Request(ctx, alexID, viewerID, now.Add(-20*time.Hour)); err != nil {
		return fmt.Errorf("failed to seed follow request: %w", err)
	}

	notifications := []struct {
		name    string
		actor   string
		kind    models.NotificationType
		message string
		post    string
		isRead  bool
		age     time.Duration
	}{
		{name: "john-like", actor: "john_doe", kind: models.NotificationTypeLike, message: "liked your photo.", post: "post-1", age: 30 * time.Minute},
		{name: "jane-follow", actor: "jane_smith", kind: models.NotificationTypeFollow, message: "started following you.", age: 105 * time.Minute},
		{name: "mike-comment", actor: "mike_wilson", kind: models.NotificationTypeComment, message: `commented: "Amazing shot! 📸"`, post: "post-2", isRead: true, age: 2 * time.Hour},
		{name: "sarah-like", actor: "sarah_jones", kind: models.NotificationTypeLike, message: "liked your photo.", post: "post-3", isRead: true, age: 18 * time.Hour},
		{name: "alex-request", actor: "alex_brown", kind: models.NotificationTypeFollowRequest, message: "requested to follow you.", age: 20 * time.Hour},
	}

	for _, sn := range notifications {
		actorID := ID("user", sn.actor)
		notification := models.Notification{
			ID:          ID("notification", sn.name),
			RecipientID: viewerID,
			Type:        sn.kind,
			ActorID:     &actorID,
			Message:     sn.message,
			IsRead:      sn.isRead,
			CreatedAt:   now.Add(-sn.age),
		}
		if sn.post != "" {
			postID := ID("seed-post", sn.post)
			notification.PostID = &postID
		}

		if _, err := stores.Notifications.Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to seed notification %s: %w", sn.name, err)
		}
	}

	return nil
}
