/*
Package treasury implements a shared fee treasury. Registered distributor
accounts pay fees into a common pool. The pooled balance is distributed on
demand across weighted allocations, with each round archived as an immutable
distribution batch.

Allocations declare a destination address and a ratio expressed in parts
per million. Ratios of all active allocations must never sum above 100%.
Whatever is not covered by the active ratios stays in the pool for the next
round. Shares are rounded down, so distribution can never pay out more than
was collected.

Accounts can be granted a time boxed fee discount. Collaborating contracts
ask the treasury for the effective fee of an account and the treasury keeps
track of how much was waived.

All funds are held on a single treasury account controlled by this package.
Only the configuration owner can change allocations, trigger distribution or
grant discounts. It is a good idea to use a multisig contract as the owner
address value.
*/
package treasury
