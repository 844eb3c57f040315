package feedview

import (
	"testing"
	"time"
)

func sampleFeed() Feed {
	parent := uint64(10)
	return Feed{
		Photos: []PhotoView{
			{
				ID:    1,
				Likes: 3,
				Comments: []CommentView{
					{
						ID:    10,
						Likes: 2,
						Replies: []CommentView{
							{ID: 11, ParentID: &parent, Likes: 1, LikedByUser: true},
						},
					},
					{ID: 20},
				},
				CommentsCount: 3,
			},
			{ID: 2, Likes: 0},
		},
	}
}

func TestTogglePhotoLike_TwiceRestoresOriginal(t *testing.T) {
	feed := sampleFeed()

	if !feed.TogglePhotoLike(1) {
		t.Fatal("toggle returned false for known photo")
	}
	if feed.Photos[0].Likes != 4 || !feed.Photos[0].LikedByUser {
		t.Errorf("after like: likes=%d liked=%v", feed.Photos[0].Likes, feed.Photos[0].LikedByUser)
	}

	if !feed.TogglePhotoLike(1) {
		t.Fatal("toggle returned false for known photo")
	}
	if feed.Photos[0].Likes != 3 || feed.Photos[0].LikedByUser {
		t.Errorf("after unlike: likes=%d liked=%v", feed.Photos[0].Likes, feed.Photos[0].LikedByUser)
	}
}

func TestTogglePhotoLike_UnknownPhoto(t *testing.T) {
	feed := sampleFeed()
	if feed.TogglePhotoLike(99) {
		t.Error("toggle returned true for unknown photo")
	}
}

func TestToggleCommentLike_ReachesReplies(t *testing.T) {
	feed := sampleFeed()

	// reply starts liked with 1 like; unliking drops it to 0
	if !feed.ToggleCommentLike(1, 11) {
		t.Fatal("toggle returned false for known reply")
	}
	reply := feed.Photos[0].Comments[0].Replies[0]
	if reply.Likes != 0 || reply.LikedByUser {
		t.Errorf("after unlike: likes=%d liked=%v", reply.Likes, reply.LikedByUser)
	}

	if !feed.ToggleCommentLike(1, 10) {
		t.Fatal("toggle returned false for known comment")
	}
	if feed.Photos[0].Comments[0].Likes != 3 {
		t.Errorf("comment likes = %d, want 3", feed.Photos[0].Comments[0].Likes)
	}
}

func TestInsertComment_TopLevelAppends(t *testing.T) {
	feed := sampleFeed()

	node := CommentView{ID: 30, CreatedAt: time.Now()}
	if !feed.InsertComment(1, nil, node) {
		t.Fatal("insert returned false")
	}

	comments := feed.Photos[0].Comments
	if comments[len(comments)-1].ID != 30 {
		t.Error("new comment was not appended at the end")
	}
	if feed.Photos[0].CommentsCount != 4 {
		t.Errorf("comments_count = %d, want 4", feed.Photos[0].CommentsCount)
	}
}

func TestInsertComment_ReplyDepthBounded(t *testing.T) {
	feed := sampleFeed()

	parent := uint64(10)
	if !feed.InsertComment(1, &parent, CommentView{ID: 31}) {
		t.Fatal("insert under top-level comment failed")
	}
	if len(feed.Photos[0].Comments[0].Replies) != 2 {
		t.Errorf("replies = %d, want 2", len(feed.Photos[0].Comments[0].Replies))
	}

	// a reply can never become a parent
	replyID := uint64(11)
	if feed.InsertComment(1, &replyID, CommentView{ID: 32}) {
		t.Error("insert under a reply succeeded; depth must be bounded at 2")
	}

	// even a node handed in with children is flattened on insert
	parent2 := uint64(20)
	withChildren := CommentView{ID: 33, Replies: []CommentView{{ID: 34}}}
	if !feed.InsertComment(1, &parent2, withChildren) {
		t.Fatal("insert failed")
	}
	inserted := feed.Photos[0].Comments[1].Replies[0]
	if inserted.Replies != nil {
		t.Error("inserted reply kept children; replies must not nest")
	}
}

func TestRecountComments(t *testing.T) {
	feed := sampleFeed()
	feed.Photos[0].CommentsCount = 0
	if got := feed.Photos[0].RecountComments(); got != 3 {
		t.Errorf("RecountComments = %d, want 3", got)
	}
}
