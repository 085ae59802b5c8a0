// Package app holds the article workflow itself: the registry of tracked
// article channels, the archive/reopen state machine, the permission
// configurations and the deadline sweeper.
//
// Rules the whole package is built around:
//
//   - Two states only, active and archived. Active -> archived happens via
//     the archive command or the sweeper; archived -> active only via the
//     reopen command.
//   - One shared transition path. Commands and the sweeper call the same
//     registry methods, so there is exactly one place ordering and rollback
//     live: permissions first, then the category move, then the state
//     write, then the file. Fail early and the record is untouched.
//   - Archive is idempotent. An already archived article returns success
//     without touching the platform, which is also the safety net when a
//     human and the sweeper race over the same channel.
//   - Every mutation writes the state file before returning. A failed write
//     after live side effects is a known degraded condition; Reconcile
//     reports it on the next start instead of papering over it.
//
// Everything platform-specific sits behind ChannelGateway; server/discord
// implements it against Discord.
package app
