package jinzhu

import (
	"fmt"
)

// Personalization weights, hoisted out of the query text so every term that
// feeds ordering is a named, auditable constant.
const (
	forYouWindowDays  = 10
	exploreWindowDays = 30

	forYouOwnContentBonus   = 20.0
	forYouFollowingBonus    = 20.0
	forYouDirectLikeBonus   = 15.0
	forYouCommonLikeWeight  = 8.0
	forYouCommonFollowBonus = 5.0

	followingOwnBonus        = 1.5
	followingBase            = 1.2
	followingLikeWeight      = 0.35
	followingReshareWeight   = 0.35
	followingReplyWeight     = 0.15
	followingQuoteWeight     = 0.2
	followingMentionWeight   = 0.1
	followingFreshnessWeight = 0.1
	followingFreshnessHours  = 2.0

	exploreInterestMatchBonus = 40.0
	exploreOwnContentBonus    = 20.0
	exploreFollowingBonus     = 15.0
	exploreDirectLikeBonus    = 10.0
	exploreCommonLikeWeight   = 5.0
	exploreCommonFollowBonus  = 3.0
)

const (
	orderByScore  = "ORDER BY s.personalization_score DESC, s.effective_on DESC"
	orderByLatest = "ORDER BY s.effective_on DESC"
)

// candidateQueryTmpl is the one declarative statement each variant issues:
// a union of original/quoted content with reshare events, exclusion rules
// applied, the variant's personalization score computed per row, and every
// feature scoring needs attached, page-bounded at the end. Placeholders are
// the content scope, the reshare scope, the score expression and the order
// clause.
//
// viewer_excluded holds every account blocked by the viewer, blocking the
// viewer, or muted by the viewer; both the author and the resharer of a
// candidate must clear it. Only public original/quote posts (kind 0 or 2)
// enter the union, and replies never surface as candidates.
const candidateQueryTmpl = `
WITH viewer_follows AS (
	SELECT follow_user_id FROM p_following WHERE user_id = @viewer AND is_del = 0
),
viewer_excluded AS (
	SELECT block_user_id AS user_id FROM p_blacklist WHERE user_id = @viewer AND is_del = 0
	UNION
	SELECT user_id FROM p_blacklist WHERE block_user_id = @viewer AND is_del = 0
	UNION
	SELECT mute_user_id AS user_id FROM p_mute WHERE user_id = @viewer AND is_del = 0
),
candidates AS (
	SELECT p.id AS post_id, p.user_id AS author_id, p.content, p.kind, p.parent_id,
	       p.interest_id, p.summary, p.created_on,
	       p.created_on AS effective_on,
	       FALSE AS is_reshare,
	       CAST(NULL AS BIGINT) AS resharer_id
	FROM p_post p
	WHERE p.is_del = 0 AND p.visibility = 0 AND p.kind IN (0, 2)
	  AND p.user_id NOT IN (SELECT user_id FROM viewer_excluded)
	  %[1]s
	UNION ALL
	SELECT p.id, p.user_id, p.content, p.kind, p.parent_id,
	       p.interest_id, p.summary, p.created_on,
	       r.created_on AS effective_on,
	       TRUE AS is_reshare,
	       r.user_id AS resharer_id
	FROM p_reshare r
	JOIN p_post p ON p.id = r.post_id
	WHERE r.is_del = 0 AND p.is_del = 0 AND p.visibility = 0 AND p.kind IN (0, 2)
	  AND p.user_id NOT IN (SELECT user_id FROM viewer_excluded)
	  AND r.user_id NOT IN (SELECT user_id FROM viewer_excluded)
	  %[2]s
),
scored AS (
	SELECT c.*, %[3]s AS personalization_score
	FROM candidates c
)
SELECT
	s.post_id, s.author_id, s.content, s.kind, s.parent_id, s.interest_id, s.summary,
	s.created_on, s.effective_on, s.is_reshare, s.resharer_id, s.personalization_score,
	au.username AS author_username, au.nickname AS author_nickname,
	au.avatar AS author_avatar, au.is_verified AS author_verified,
	(SELECT COUNT(*) FROM p_following f WHERE f.follow_user_id = s.author_id AND f.is_del = 0) AS author_follower_count,
	(SELECT COUNT(*) FROM p_following f WHERE f.user_id = s.author_id AND f.is_del = 0) AS author_following_count,
	(SELECT COUNT(*) FROM p_post pp WHERE pp.user_id = s.author_id AND pp.is_del = 0) AS author_post_count,
	ru.username AS resharer_username, ru.nickname AS resharer_nickname,
	ru.avatar AS resharer_avatar, ru.is_verified AS resharer_verified,
	EXISTS (SELECT 1 FROM p_post_media pm WHERE pm.post_id = s.post_id AND pm.is_del = 0) AS has_media,
	(SELECT COUNT(*) FROM p_post_hashtag ph WHERE ph.post_id = s.post_id AND ph.is_del = 0) AS hashtag_count,
	(SELECT COUNT(*) FROM p_post_mention pn WHERE pn.post_id = s.post_id AND pn.is_del = 0) AS mention_count,
	(SELECT COUNT(*) FROM p_post_like pl WHERE pl.post_id = s.post_id AND pl.is_del = 0) AS like_count,
	(SELECT COUNT(*) FROM p_reshare pr WHERE pr.post_id = s.post_id AND pr.is_del = 0) AS reshare_count,
	(SELECT COUNT(*) FROM p_post pc WHERE pc.parent_id = s.post_id AND pc.kind = 1 AND pc.is_del = 0) AS reply_count,
	(SELECT COUNT(*) FROM p_post pq WHERE pq.parent_id = s.post_id AND pq.kind = 2 AND pq.is_del = 0) AS quote_count,
	EXISTS (SELECT 1 FROM p_post_like pl WHERE pl.post_id = s.post_id AND pl.user_id = @viewer AND pl.is_del = 0) AS liked_by_viewer,
	EXISTS (SELECT 1 FROM viewer_follows vf WHERE vf.follow_user_id = s.author_id) AS follows_author,
	EXISTS (SELECT 1 FROM p_reshare pr WHERE pr.post_id = s.post_id AND pr.user_id = @viewer AND pr.is_del = 0) AS reshared_by_viewer,
	pp2.id AS parent_post_id, pp2.content AS parent_content, pp2.created_on AS parent_created_on,
	pu.id AS parent_author_id, pu.username AS parent_author_username, pu.nickname AS parent_author_nickname,
	pu.avatar AS parent_author_avatar, pu.is_verified AS parent_author_verified,
	(SELECT COUNT(*) FROM p_post_like pl WHERE pl.post_id = pp2.id AND pl.is_del = 0) AS parent_like_count,
	(SELECT COUNT(*) FROM p_reshare pr WHERE pr.post_id = pp2.id AND pr.is_del = 0) AS parent_reshare_count,
	(SELECT COUNT(*) FROM p_post pc WHERE pc.parent_id = pp2.id AND pc.kind = 1 AND pc.is_del = 0) AS parent_reply_count,
	EXISTS (SELECT 1 FROM p_post_like pl WHERE pl.post_id = pp2.id AND pl.user_id = @viewer AND pl.is_del = 0) AS parent_liked_by_viewer,
	EXISTS (SELECT 1 FROM p_reshare pr WHERE pr.post_id = pp2.id AND pr.user_id = @viewer AND pr.is_del = 0) AS parent_reshared_by_viewer
FROM scored s
JOIN p_user au ON au.id = s.author_id
LEFT JOIN p_user ru ON ru.id = s.resharer_id
LEFT JOIN p_post pp2 ON pp2.id = s.parent_id AND s.kind = 2 AND pp2.is_del = 0
LEFT JOIN p_user pu ON pu.id = pp2.user_id
%[4]s
LIMIT @limit OFFSET @offset`

var (
	forYouQuery = fmt.Sprintf(candidateQueryTmpl,
		"AND p.created_on >= @since",
		"AND r.created_on >= @since",
		forYouScoreExpr(),
		orderByScore,
	)

	followingQuery = fmt.Sprintf(candidateQueryTmpl,
		"AND (p.user_id IN (SELECT follow_user_id FROM viewer_follows) OR p.user_id = @viewer)",
		`AND (p.user_id IN (SELECT follow_user_id FROM viewer_follows) OR p.user_id = @viewer)
	  AND (r.user_id IN (SELECT follow_user_id FROM viewer_follows) OR r.user_id = @viewer)`,
		followingScoreExpr(),
		orderByScore,
	)

	exploreQuery = fmt.Sprintf(candidateQueryTmpl,
		"AND p.interest_id IN @interestIds AND p.created_on >= @since",
		"AND p.interest_id IN @interestIds AND r.created_on >= @since",
		exploreScoreExpr(),
		orderByScore,
	)

	exploreLatestQuery = fmt.Sprintf(candidateQueryTmpl,
		"AND p.interest_id IN @interestIds AND p.created_on >= @since",
		"AND p.interest_id IN @interestIds AND r.created_on >= @since",
		exploreScoreExpr(),
		orderByLatest,
	)
)

func forYouScoreExpr() string {
	return fmt.Sprintf(`
	  (CASE WHEN c.author_id = @viewer THEN %g ELSE 0.0 END)
	+ (CASE WHEN c.author_id IN (SELECT follow_user_id FROM viewer_follows) THEN %g ELSE 0.0 END)
	+ (CASE WHEN EXISTS (
		SELECT 1 FROM p_post_like pl JOIN p_post ap ON ap.id = pl.post_id
		WHERE pl.user_id = @viewer AND ap.user_id = c.author_id AND pl.is_del = 0 AND ap.is_del = 0
	  ) THEN %g ELSE 0.0 END)
	+ %g * (SELECT COUNT(*) FROM p_post_like pl WHERE pl.post_id = c.post_id AND pl.is_del = 0
		AND pl.user_id IN (SELECT follow_user_id FROM viewer_follows))
	+ (CASE WHEN EXISTS (
		SELECT 1 FROM p_following f WHERE f.is_del = 0 AND f.follow_user_id = c.author_id
		AND f.user_id IN (SELECT follow_user_id FROM viewer_follows)
	  ) THEN %g ELSE 0.0 END)`,
		forYouOwnContentBonus, forYouFollowingBonus, forYouDirectLikeBonus,
		forYouCommonLikeWeight, forYouCommonFollowBonus)
}

func followingScoreExpr() string {
	return fmt.Sprintf(`
	  (CASE WHEN c.author_id = @viewer THEN %g ELSE 0.0 END)
	+ %g
	+ %g * LN(1 + (SELECT COUNT(*) FROM p_post_like pl WHERE pl.post_id = c.post_id AND pl.is_del = 0))
	+ %g * LN(1 + (SELECT COUNT(*) FROM p_reshare pr WHERE pr.post_id = c.post_id AND pr.is_del = 0))
	+ %g * LN(1 + (SELECT COUNT(*) FROM p_post pc WHERE pc.parent_id = c.post_id AND pc.kind = 1 AND pc.is_del = 0))
	+ %g * LN(1 + (SELECT COUNT(*) FROM p_post pq WHERE pq.parent_id = c.post_id AND pq.kind = 2 AND pq.is_del = 0))
	+ %g * LN(1 + (SELECT COUNT(*) FROM p_post_mention pn WHERE pn.post_id = c.post_id AND pn.is_del = 0))
	+ %g / (1 + (EXTRACT(EPOCH FROM NOW()) - c.effective_on) / 3600.0 / %g)`,
		followingOwnBonus, followingBase,
		followingLikeWeight, followingReshareWeight, followingReplyWeight,
		followingQuoteWeight, followingMentionWeight,
		followingFreshnessWeight, followingFreshnessHours)
}

func exploreScoreExpr() string {
	return fmt.Sprintf(`
	  %g
	+ (CASE WHEN c.author_id = @viewer THEN %g ELSE 0.0 END)
	+ (CASE WHEN c.author_id IN (SELECT follow_user_id FROM viewer_follows) THEN %g ELSE 0.0 END)
	+ (CASE WHEN EXISTS (
		SELECT 1 FROM p_post_like pl JOIN p_post ap ON ap.id = pl.post_id
		WHERE pl.user_id = @viewer AND ap.user_id = c.author_id AND pl.is_del = 0 AND ap.is_del = 0
	  ) THEN %g ELSE 0.0 END)
	+ %g * (SELECT COUNT(*) FROM p_post_like pl WHERE pl.post_id = c.post_id AND pl.is_del = 0
		AND pl.user_id IN (SELECT follow_user_id FROM viewer_follows))
	+ (CASE WHEN EXISTS (
		SELECT 1 FROM p_following f WHERE f.is_del = 0 AND f.follow_user_id = c.author_id
		AND f.user_id IN (SELECT follow_user_id FROM viewer_follows)
	  ) THEN %g ELSE 0.0 END)`,
		exploreInterestMatchBonus, exploreOwnContentBonus, exploreFollowingBonus,
		exploreDirectLikeBonus, exploreCommonLikeWeight, exploreCommonFollowBonus)
}
