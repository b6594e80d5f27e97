package store

const (
	createMeetup = `INSERT INTO meetups (id, group_id, author_id, title, description, start_time, duration_minutes, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at;`

	getMeetup = `SELECT id, group_id, author_id, title, description, start_time, duration_minutes, status, created_at, deleted
    FROM meetups
    WHERE id = $1 AND NOT deleted;`

	deleteMeetup = `UPDATE meetups
    SET deleted = TRUE
    WHERE id = $1 AND NOT deleted;`

	countAttendees = `SELECT meetup_id, COUNT(*)
    FROM attendees
    WHERE meetup_id = ANY($1)
    GROUP BY meetup_id;`

	findAttendance = `SELECT meetup_id, status
    FROM attendees
    WHERE user_id = $1 AND meetup_id = ANY($2);`

	setAttendance = `INSERT INTO attendees (meetup_id, user_id, status)
    VALUES ($1, $2, $3)
    ON CONFLICT (meetup_id, user_id) DO UPDATE SET status = EXCLUDED.status;`

	createDiscussion = `INSERT INTO discussions (id, group_id, author_id, title, body, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at;`

	getDiscussion = `SELECT id, group_id, author_id, title, body, status, created_at, deleted
    FROM discussions
    WHERE id = $1 AND NOT deleted;`

	deleteDiscussion = `UPDATE discussions
    SET deleted = TRUE
    WHERE id = $1 AND NOT deleted;`

	groupOfDiscussion = `SELECT group_id
    FROM discussions
    WHERE id = $1;`

	createComment = `INSERT INTO comments (id, discussion_id, author_id, body, moderation_status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING created_at;`

	getComment = `SELECT id, discussion_id, author_id, body, moderation_status, created_at, deleted
    FROM comments
    WHERE id = $1 AND NOT deleted;`

	deleteComment = `UPDATE comments
    SET deleted = TRUE
    WHERE id = $1 AND NOT deleted;`

	countComments = `SELECT discussion_id, COUNT(*)
    FROM comments
    WHERE discussion_id = ANY($1) AND NOT deleted AND moderation_status = 'ok'
    GROUP BY discussion_id;`

	findMemberRole = `SELECT role
    FROM group_members
    WHERE user_id = $1 AND group_id = $2;`

	setMemberRole = `INSERT INTO group_members (group_id, user_id, role)
    VALUES ($1, $2, $3)
    ON CONFLICT (group_id, user_id) DO UPDATE SET role = EXCLUDED.role;`
)
