package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"article-review-cms/config"
	"article-review-cms/metrics"
	"article-review-cms/models"
	"article-review-cms/policy"
	"article-review-cms/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WorkflowTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *gorm.DB
	store *repositories.Store
	svc   Services

	admin       *models.User
	moderator   *models.User
	contributor *models.User
	other       *models.User
}

func TestWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func (s *WorkflowTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := config.InitDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	s.Require().NoError(err)
	s.db = db

	s.store = repositories.NewStore(db)
	s.Require().NoError(s.store.Users.EnsureSentinel(s.ctx))

	jwtConfig := config.JWTConfig{Secret: "test-secret", Expiration: time.Hour}
	s.svc = NewServices(s.store, jwtConfig, zap.NewNop(), metrics.NewWorkflowMetrics(prometheus.NewRegistry()))

	s.admin = s.register("admin")
	s.moderator = s.register("moderator")
	s.contributor = s.register("alice")
	s.other = s.register("bob")

	s.moderator, err = s.svc.Users.ChangeStatus(s.ctx, s.admin, s.moderator.ID, models.RoleModerator)
	s.Require().NoError(err)
}

func (s *WorkflowTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *WorkflowTestSuite) register(username string) *models.User {
	resp, err := s.svc.Auth.Register(s.ctx, models.RegisterRequest{
		Username:  username,
		Password:  "password123",
		FirstName: "First",
		LastName:  "Last",
		Email:     username + "@example.com",
		Phone:     "380676666666",
	})
	s.Require().NoError(err)
	user := resp.User
	return &user
}

func (s *WorkflowTestSuite) createArticle(text string) *models.Article {
	article, err := s.svc.Articles.CreateArticle(s.ctx, s.admin, models.CreateArticleRequest{
		Name: "Article",
		Text: text,
	})
	s.Require().NoError(err)
	return article
}

func (s *WorkflowTestSuite) propose(user *models.User, articleID uint, text string) *models.Change {
	change, err := s.svc.Changes.CreateChange(s.ctx, user, models.CreateChangeRequest{
		ArticleID: articleID,
		NewText:   text,
	})
	s.Require().NoError(err)
	return change
}

func (s *WorkflowTestSuite) review(user *models.User, changeID uint, verdict bool) (*models.Review, error) {
	return s.svc.Reviews.SubmitReview(s.ctx, user, models.CreateReviewRequest{
		ChangeID: changeID,
		Verdict:  &verdict,
		Comment:  "looks fine",
	})
}

func (s *WorkflowTestSuite) changeStatus(id uint) models.ChangeStatus {
	change, err := s.store.Changes.GetByID(s.ctx, id)
	s.Require().NoError(err)
	return change.Status
}

func (s *WorkflowTestSuite) article(id uint) *models.Article {
	article, err := s.store.Articles.GetByID(s.ctx, id)
	s.Require().NoError(err)
	return article
}

// dropArticle removes the article row behind the services' back, leaving its
// changes dangling.
func (s *WorkflowTestSuite) dropArticle(id uint) {
	s.Require().NoError(s.db.Exec("PRAGMA foreign_keys = OFF").Error)
	s.Require().NoError(s.db.Exec("DELETE FROM articles WHERE id = ?", id).Error)
}

func (s *WorkflowTestSuite) TestRegisterAssignsRoles() {
	s.Equal(models.RoleAdmin, s.admin.Role)
	s.Equal(models.RoleModerator, s.moderator.Role)
	s.Equal(models.RoleContributor, s.contributor.Role)
	s.Equal(models.RoleContributor, s.other.Role)
}

func (s *WorkflowTestSuite) TestRegisterDuplicateUsername() {
	_, err := s.svc.Auth.Register(s.ctx, models.RegisterRequest{Username: "alice", Password: "secret"})
	s.IsType(models.ErrorValidation{}, err)
	s.EqualError(err, "Username already used")
}

func (s *WorkflowTestSuite) TestLogin() {
	resp, err := s.svc.Auth.Login(s.ctx, models.LoginRequest{Username: "alice", Password: "password123"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("user", resp.Role)

	_, err = s.svc.Auth.Login(s.ctx, models.LoginRequest{Username: "alice", Password: "wrong"})
	s.IsType(models.ErrorUnauthorized{}, err)

	_, err = s.svc.Auth.Login(s.ctx, models.LoginRequest{Username: models.SentinelUserUsername, Password: ""})
	s.IsType(models.ErrorUnauthorized{}, err)
}

func (s *WorkflowTestSuite) TestAuthenticateReloadsRole() {
	resp, err := s.svc.Auth.Login(s.ctx, models.LoginRequest{Username: "alice", Password: "password123"})
	s.Require().NoError(err)

	_, err = s.svc.Users.ChangeStatus(s.ctx, s.admin, s.contributor.ID, models.RoleModerator)
	s.Require().NoError(err)

	user, err := s.svc.Auth.Authenticate(s.ctx, resp.Token)
	s.Require().NoError(err)
	s.Equal(models.RoleModerator, user.Role)

	_, err = s.svc.Auth.Authenticate(s.ctx, resp.Token+"x")
	s.IsType(models.ErrorForbidden{}, err)
}

func (s *WorkflowTestSuite) TestAcceptMergesAndDeniesSiblings() {
	article := s.createArticle("original")
	first := s.propose(s.contributor, article.ID, "first")
	second := s.propose(s.other, article.ID, "second")
	s.Equal(0, first.ArticleVersion)
	s.Equal("original", first.OldText)
	s.Equal(models.StatusInReview, first.Status)

	review, err := s.review(s.moderator, first.ID, true)
	s.Require().NoError(err)
	s.True(review.Verdict)
	s.Equal(s.moderator.ID, review.ReviewerID)

	merged := s.article(article.ID)
	s.Equal("first", merged.Text)
	s.Equal(1, merged.Version)
	s.Equal(models.StatusAccepted, s.changeStatus(first.ID))
	s.Equal(models.StatusDenied, s.changeStatus(second.ID))

	// The auto-denied sibling can no longer be reviewed
	_, err = s.review(s.moderator, second.ID, true)
	s.IsType(models.ErrorBadRequest{}, err)
	s.Equal("first", s.article(article.ID).Text)
}

func (s *WorkflowTestSuite) TestSiblingDenialIsScopedToVersion() {
	article := s.createArticle("v0")
	old := s.propose(s.contributor, article.ID, "v1")
	_, err := s.review(s.moderator, old.ID, true)
	s.Require().NoError(err)

	fresh := s.propose(s.contributor, article.ID, "v2 by alice")
	rival := s.propose(s.other, article.ID, "v2 by bob")
	s.Equal(1, fresh.ArticleVersion)

	other := s.createArticle("unrelated")
	unrelated := s.propose(s.other, other.ID, "untouched")

	_, err = s.review(s.admin, fresh.ID, true)
	s.Require().NoError(err)

	s.Equal(models.StatusAccepted, s.changeStatus(old.ID))
	s.Equal(models.StatusAccepted, s.changeStatus(fresh.ID))
	s.Equal(models.StatusDenied, s.changeStatus(rival.ID))
	s.Equal(models.StatusInReview, s.changeStatus(unrelated.ID))
	s.Equal(2, s.article(article.ID).Version)
}

func (s *WorkflowTestSuite) TestDenyLeavesArticleUntouched() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "rejected")
	sibling := s.propose(s.other, article.ID, "still waiting")

	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	s.Equal(models.StatusDenied, s.changeStatus(change.ID))
	s.Equal(models.StatusInReview, s.changeStatus(sibling.ID))
	s.Equal("original", s.article(article.ID).Text)
	s.Equal(0, s.article(article.ID).Version)
}

func (s *WorkflowTestSuite) TestOneReviewPerChange() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")

	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	_, err = s.review(s.admin, change.ID, true)
	s.IsType(models.ErrorBadRequest{}, err)
	s.EqualError(err, "Review already exist")
	s.Equal(models.StatusDenied, s.changeStatus(change.ID))
}

func (s *WorkflowTestSuite) TestReviewPermissions() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")

	_, err := s.review(s.other, change.ID, true)
	s.IsType(models.ErrorForbidden{}, err)

	_, err = s.review(s.moderator, 9999, true)
	s.IsType(models.ErrorNotFound{}, err)
	s.EqualError(err, "Change not found")
}

func (s *WorkflowTestSuite) TestReviseDeniedReviewToAccept() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "second chance")
	sibling := s.propose(s.other, article.ID, "competitor")

	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	accepted := true
	comment := "on second thought"
	_, err = s.svc.Reviews.UpdateReview(s.ctx, s.moderator, change.ID, models.UpdateReviewRequest{Verdict: &accepted})
	s.IsType(models.ErrorForbidden{}, err)

	review, err := s.svc.Reviews.UpdateReview(s.ctx, s.admin, change.ID, models.UpdateReviewRequest{
		Verdict: &accepted,
		Comment: &comment,
	})
	s.Require().NoError(err)
	s.True(review.Verdict)
	s.Equal(comment, review.Comment)

	s.Equal(models.StatusAccepted, s.changeStatus(change.ID))
	s.Equal(models.StatusDenied, s.changeStatus(sibling.ID))
	s.Equal("second chance", s.article(article.ID).Text)
	s.Equal(1, s.article(article.ID).Version)

	_, err = s.svc.Reviews.UpdateReview(s.ctx, s.admin, change.ID, models.UpdateReviewRequest{Verdict: &accepted})
	s.IsType(models.ErrorBadRequest{}, err)
	s.EqualError(err, "Nothing can be done. Changes already applied.")
}

func (s *WorkflowTestSuite) TestReviewCannotBeRevisedToDenied() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	denied := false
	_, err = s.svc.Reviews.UpdateReview(s.ctx, s.admin, change.ID, models.UpdateReviewRequest{Verdict: &denied})
	s.IsType(models.ErrorBadRequest{}, err)
	s.EqualError(err, "You can`t change verdict to denied")

	_, err = s.svc.Reviews.UpdateReview(s.ctx, s.admin, 9999, models.UpdateReviewRequest{Verdict: &denied})
	s.IsType(models.ErrorNotFound{}, err)
}

func (s *WorkflowTestSuite) TestGetReviewVisibility() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	_, err := s.review(s.moderator, change.ID, true)
	s.Require().NoError(err)

	for _, user := range []*models.User{s.admin, s.moderator, s.contributor} {
		review, err := s.svc.Reviews.GetReview(s.ctx, user, change.ID)
		s.Require().NoError(err)
		s.Equal(change.ID, review.ChangeID)
	}

	_, err = s.svc.Reviews.GetReview(s.ctx, s.other, change.ID)
	s.IsType(models.ErrorForbidden{}, err)

	_, err = s.svc.Reviews.GetReview(s.ctx, nil, change.ID)
	s.IsType(models.ErrorForbidden{}, err)
}

func (s *WorkflowTestSuite) TestReviewListings() {
	article := s.createArticle("original")
	mine := s.propose(s.contributor, article.ID, "mine")
	theirs := s.propose(s.other, article.ID, "theirs")
	_, err := s.review(s.moderator, theirs.ID, false)
	s.Require().NoError(err)
	_, err = s.review(s.moderator, mine.ID, true)
	s.Require().NoError(err)

	reviews, err := s.svc.Reviews.GetMyReviews(s.ctx, s.moderator)
	s.Require().NoError(err)
	s.Len(reviews, 2)

	_, err = s.svc.Reviews.GetMyReviews(s.ctx, s.contributor)
	s.IsType(models.ErrorForbidden{}, err)

	reviewed, err := s.svc.Reviews.GetMyChangesReviewed(s.ctx, s.contributor)
	s.Require().NoError(err)
	s.Require().Len(reviewed, 1)
	s.Equal(mine.ID, reviewed[0].ChangeID)
}

func (s *WorkflowTestSuite) TestChangeVisibilityAndListings() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	s.propose(s.other, article.ID, "other")

	_, err := s.svc.Changes.GetChange(s.ctx, s.contributor, change.ID)
	s.NoError(err)
	_, err = s.svc.Changes.GetChange(s.ctx, s.moderator, change.ID)
	s.NoError(err)
	_, err = s.svc.Changes.GetChange(s.ctx, s.other, change.ID)
	s.IsType(models.ErrorForbidden{}, err)
	_, err = s.svc.Changes.GetChange(s.ctx, s.admin, 9999)
	s.IsType(models.ErrorNotFound{}, err)

	mine, err := s.svc.Changes.GetMyChanges(s.ctx, s.contributor)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(change.ID, mine[0].ID)

	_, err = s.review(s.moderator, change.ID, true)
	s.Require().NoError(err)

	queue, err := s.svc.Changes.GetChangesInReview(s.ctx, s.moderator)
	s.Require().NoError(err)
	s.Empty(queue)

	_, err = s.svc.Changes.GetChangesInReview(s.ctx, s.contributor)
	s.IsType(models.ErrorForbidden{}, err)

	_, err = s.svc.Changes.CreateChange(s.ctx, s.contributor, models.CreateChangeRequest{ArticleID: 9999, NewText: "x"})
	s.IsType(models.ErrorNotFound{}, err)
}

func (s *WorkflowTestSuite) TestDeleteChange() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	s.IsType(models.ErrorForbidden{}, s.svc.Changes.DeleteChange(s.ctx, s.moderator, change.ID))
	s.Require().NoError(s.svc.Changes.DeleteChange(s.ctx, s.admin, change.ID))

	_, err = s.svc.Reviews.GetReview(s.ctx, s.admin, change.ID)
	s.IsType(models.ErrorNotFound{}, err)
	s.IsType(models.ErrorNotFound{}, s.svc.Changes.DeleteChange(s.ctx, s.admin, change.ID))
}

func (s *WorkflowTestSuite) TestArticleEditAdvancesVersion() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "proposal")

	text := "edited directly"
	edited, err := s.svc.Articles.UpdateArticle(s.ctx, s.moderator, article.ID, models.UpdateArticleRequest{Text: &text})
	s.Require().NoError(err)
	s.Equal(1, edited.Version)
	s.Equal(text, edited.Text)

	// The pending change still targets version 0
	_, err = s.review(s.moderator, change.ID, true)
	s.Require().NoError(err)
	s.Equal(2, s.article(article.ID).Version)

	_, err = s.svc.Articles.UpdateArticle(s.ctx, s.contributor, article.ID, models.UpdateArticleRequest{Text: &text})
	s.IsType(models.ErrorForbidden{}, err)
	_, err = s.svc.Articles.UpdateArticle(s.ctx, s.admin, 9999, models.UpdateArticleRequest{Text: &text})
	s.IsType(models.ErrorNotFound{}, err)
}

func (s *WorkflowTestSuite) TestArticlePermissions() {
	_, err := s.svc.Articles.CreateArticle(s.ctx, s.contributor, models.CreateArticleRequest{Name: "n", Text: "t"})
	s.IsType(models.ErrorForbidden{}, err)

	article, err := s.svc.Articles.CreateArticle(s.ctx, s.moderator, models.CreateArticleRequest{Name: "n", Text: "t"})
	s.Require().NoError(err)
	s.Equal(0, article.Version)
	s.Equal(s.moderator.ID, article.CreatorID)

	s.IsType(models.ErrorForbidden{}, s.svc.Articles.DeleteArticle(s.ctx, s.moderator, article.ID))

	articles, err := s.svc.Articles.GetArticles(s.ctx)
	s.Require().NoError(err)
	s.Len(articles, 1)
}

func (s *WorkflowTestSuite) TestDeleteArticleCascades() {
	article := s.createArticle("original")
	reviewed := s.propose(s.contributor, article.ID, "reviewed")
	pending := s.propose(s.other, article.ID, "pending")
	_, err := s.review(s.moderator, reviewed.ID, false)
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Articles.DeleteArticle(s.ctx, s.admin, article.ID))

	_, err = s.svc.Articles.GetArticle(s.ctx, article.ID)
	s.IsType(models.ErrorNotFound{}, err)
	for _, id := range []uint{reviewed.ID, pending.ID} {
		_, err = s.svc.Changes.GetChange(s.ctx, s.admin, id)
		s.IsType(models.ErrorNotFound{}, err)
	}
	exists, err := s.store.Reviews.ExistsForChange(s.ctx, reviewed.ID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *WorkflowTestSuite) TestDeleteUserReassignsHistory() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	_, err := s.review(s.moderator, change.ID, true)
	s.Require().NoError(err)

	s.IsType(models.ErrorForbidden{}, s.svc.Users.DeleteUser(s.ctx, s.other, s.contributor.ID))
	s.Require().NoError(s.svc.Users.DeleteUser(s.ctx, s.contributor, s.contributor.ID))
	s.Require().NoError(s.svc.Users.DeleteUser(s.ctx, s.admin, s.moderator.ID))

	stored, err := s.store.Changes.GetByID(s.ctx, change.ID)
	s.Require().NoError(err)
	s.Equal(models.SentinelUserID, stored.ProposerID)
	s.Equal(models.StatusAccepted, stored.Status)

	review, err := s.store.Reviews.GetByChangeID(s.ctx, change.ID)
	s.Require().NoError(err)
	s.Equal(models.SentinelUserID, review.ReviewerID)

	_, err = s.svc.Users.GetUser(s.ctx, s.admin, s.contributor.ID)
	s.IsType(models.ErrorNotFound{}, err)
	_, err = s.svc.Users.GetUser(s.ctx, s.admin, models.SentinelUserID)
	s.IsType(models.ErrorNotFound{}, err)
}

func (s *WorkflowTestSuite) TestLastAdminGuard() {
	_, err := s.svc.Users.ChangeStatus(s.ctx, s.admin, s.admin.ID, models.RoleModerator)
	s.IsType(models.ErrorBadRequest{}, err)
	s.EqualError(err, policy.MessageLastAdmin)

	err = s.svc.Users.DeleteUser(s.ctx, s.admin, s.admin.ID)
	s.IsType(models.ErrorBadRequest{}, err)

	_, err = s.svc.Users.ChangeStatus(s.ctx, s.admin, s.other.ID, models.RoleAdmin)
	s.Require().NoError(err)

	demoted, err := s.svc.Users.ChangeStatus(s.ctx, s.admin, s.admin.ID, models.RoleContributor)
	s.Require().NoError(err)
	s.Equal(models.RoleContributor, demoted.Role)
}

func (s *WorkflowTestSuite) TestChangeStatusValidation() {
	_, err := s.svc.Users.ChangeStatus(s.ctx, s.admin, s.other.ID, models.UserRole(5))
	s.IsType(models.ErrorValidation{}, err)

	_, err = s.svc.Users.ChangeStatus(s.ctx, s.moderator, s.other.ID, models.RoleModerator)
	s.IsType(models.ErrorForbidden{}, err)

	_, err = s.svc.Users.ChangeStatus(s.ctx, s.admin, 9999, models.RoleModerator)
	s.IsType(models.ErrorNotFound{}, err)
}

func (s *WorkflowTestSuite) TestUpdateUser() {
	name := "Denya"
	phone := "380676666666"
	updated, err := s.svc.Users.UpdateUser(s.ctx, s.contributor, s.contributor.ID, models.UpdateUserRequest{
		FirstName: &name,
		Phone:     &phone,
	})
	s.Require().NoError(err)
	s.Equal(name, updated.FirstName)

	_, err = s.svc.Users.UpdateUser(s.ctx, s.contributor, s.admin.ID, models.UpdateUserRequest{FirstName: &name})
	s.IsType(models.ErrorForbidden{}, err)

	password := "rotated"
	_, err = s.svc.Users.UpdateUser(s.ctx, s.admin, s.contributor.ID, models.UpdateUserRequest{Password: &password})
	s.Require().NoError(err)
	_, err = s.svc.Auth.Login(s.ctx, models.LoginRequest{Username: "alice", Password: password})
	s.NoError(err)
}

func (s *WorkflowTestSuite) TestAcceptRollsBackWhenArticleIsGone() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	sibling := s.propose(s.other, article.ID, "competitor")

	s.dropArticle(article.ID)

	_, err := s.review(s.moderator, change.ID, true)
	s.IsType(models.ErrorNotFound{}, err)
	s.EqualError(err, "Article not found")

	s.Equal(models.StatusInReview, s.changeStatus(change.ID))
	s.Equal(models.StatusInReview, s.changeStatus(sibling.ID))
	exists, err := s.store.Reviews.ExistsForChange(s.ctx, change.ID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *WorkflowTestSuite) TestRevisionRollsBackWhenArticleIsGone() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	_, err := s.review(s.moderator, change.ID, false)
	s.Require().NoError(err)

	s.dropArticle(article.ID)

	accepted := true
	comment := "overturned"
	_, err = s.svc.Reviews.UpdateReview(s.ctx, s.admin, change.ID, models.UpdateReviewRequest{
		Verdict: &accepted,
		Comment: &comment,
	})
	s.IsType(models.ErrorNotFound{}, err)

	s.Equal(models.StatusDenied, s.changeStatus(change.ID))
	review, err := s.store.Reviews.GetByChangeID(s.ctx, change.ID)
	s.Require().NoError(err)
	s.False(review.Verdict)
	s.Equal("looks fine", review.Comment)
}

func (s *WorkflowTestSuite) TestReviewUniqueIndexRejectsDuplicates() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")

	first := &models.Review{ChangeID: change.ID, Verdict: false, Comment: "first", ReviewerID: s.moderator.ID}
	s.Require().NoError(s.store.Reviews.Create(s.ctx, first))

	second := &models.Review{ChangeID: change.ID, Verdict: true, Comment: "second", ReviewerID: s.admin.ID}
	err := s.store.Reviews.Create(s.ctx, second)
	s.Require().Error(err)
	s.True(isDuplicateKey(err), err.Error())
}

func (s *WorkflowTestSuite) TestLockForUpdate() {
	article := s.createArticle("original")

	err := s.store.Transaction(s.ctx, func(tx *repositories.Store) error {
		locked, err := tx.Articles.LockForUpdate(s.ctx, article.ID)
		if err != nil {
			return err
		}
		s.Equal(article.ID, locked.ID)
		s.Equal("original", locked.Text)
		return nil
	})
	s.Require().NoError(err)

	_, err = s.store.Articles.LockForUpdate(s.ctx, 9999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *WorkflowTestSuite) TestSubmitReviewOnFinishedChange() {
	article := s.createArticle("original")
	change := s.propose(s.contributor, article.ID, "new")
	s.Require().NoError(s.db.Exec("UPDATE changes SET status = ? WHERE id = ?", models.StatusAccepted, change.ID).Error)

	_, err := s.review(s.moderator, change.ID, false)
	s.IsType(models.ErrorBadRequest{}, err)
	s.EqualError(err, "Change is already accepted")
}
