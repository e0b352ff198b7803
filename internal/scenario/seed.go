package scenario

// Catalog returns the fixed scenario set loaded into an empty database at
// startup. Each call returns a fresh slice.
func Catalog() []Query {
	return []Query{
		{
			Slug:               "swap-failed-unpredictable-gas-limit",
			RawQuery:           "Swap failed: cannot estimate gas; transaction may fail or may require manual gas limit",
			Intent:             "Fix gas estimation error",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"increase_gas_limit", "check_token_tax"},
			ProblemContext:     "This error usually happens when the token has a mechanism (like a tax or anti-bot) that makes gas estimation fail, or the contract is reverting.",
			MetaTitle:          "Fix Swap Failed: Cannot Estimate Gas Limit (Solution)",
			MetaDescription:    "Learn how to fix the 'cannot estimate gas' error on Uniswap/PancakeSwap. Step-by-step guide to adjusting gas limits and slippage.",
		},
		{
			Slug:               "unknown-error-json-rpc-slippage",
			RawQuery:           "Unknown error: 'Internal JSON-RPC error.' Try increasing your slippage tolerance",
			Intent:             "Resolve generic RPC error",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"increase_slippage", "change_rpc_provider"},
			ProblemContext:     "A generic JSON-RPC error often masks a revert due to insufficient slippage, especially on BSC/Polygon.",
			MetaTitle:          "Internal JSON-RPC Error Fix: Increase Slippage Tolerance",
			MetaDescription:    "Troubleshoot 'Internal JSON-RPC error' by adjusting slippage tolerance. Interactive tool to simulate the correct settings.",
		},
		{
			Slug:               "execution-reverted-insufficient-output",
			RawQuery:           "Transaction cannot succeed due to error: execution reverted: PancakeRouter: INSUFFICIENT_OUTPUT_AMOUNT",
			Intent:             "Fix slippage/price impact error",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"increase_slippage", "reduce_swap_size"},
			ProblemContext:     "You are trying to swap but the price is moving unfavorably faster than your slippage setting allows.",
			MetaTitle:          "Fix INSUFFICIENT_OUTPUT_AMOUNT Error on PancakeSwap",
			MetaDescription:    "Solution for execution reverted: INSUFFICIENT_OUTPUT_AMOUNT. Calculate the correct slippage for your transaction.",
		},
		{
			Slug:               "swap-failed-higher-slippage",
			RawQuery:           "Swap failed: try using higher than normal slippage",
			Intent:             "Adjust slippage for volatile token",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"set_slippage_auto", "increase_slippage_manual"},
			ProblemContext:     "The token likely has a transaction tax (e.g., 5-10%) that requires higher slippage to cover the fee.",
			MetaTitle:          "Swap Failed? Try Using Higher Than Normal Slippage",
			MetaDescription:    "Why your swap failed and how to safely increase slippage tolerance for high-tax tokens.",
		},
		{
			Slug:               "phantom-wallet-swap-failure",
			RawQuery:           "Phantom wallet swap failure",
			Intent:             "Troubleshoot Solana wallet swap",
			PageType:           PageNetworkTool,
			RecommendedActions: []string{"retry_transaction", "check_sol_balance"},
			ProblemContext:     "Phantom swap failures are often due to network congestion on Solana or insufficient SOL for rent/fees.",
			MetaTitle:          "Phantom Wallet Swap Failure: Troubleshooting Guide",
			MetaDescription:    "Fix failed swaps on Phantom Wallet. Check Solana network status and troubleshoot common errors.",
		},
		{
			Slug:               "web3-python-token-sell-slippage",
			RawQuery:           "Web3 Python token sell pancakeswap slippage",
			Intent:             "Programmatic trading help",
			PageType:           PageDeveloperTool,
			RecommendedActions: []string{"generate_code_snippet", "simulate_tx"},
			ProblemContext:     "Setting slippage programmatically in Web3.py requires calculating `amountOutMin` manually.",
			MetaTitle:          "Web3 Python: Handle PancakeSwap Token Sell Slippage",
			MetaDescription:    "Code examples for handling slippage when selling tokens on PancakeSwap using Web3.py.",
		},
		{
			Slug:               "failed-transaction-underpriced",
			RawQuery:           "Failed Transaction – underpriced / Replacement transaction underpriced",
			Intent:             "Fix stuck transaction",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"speed_up_transaction", "cancel_transaction"},
			ProblemContext:     "Your gas price is too low compared to the current network base fee, or you tried to replace a tx with insufficient gas bump.",
			MetaTitle:          "Fix Failed Transaction Underpriced Error",
			MetaDescription:    "How to resolve 'replacement transaction underpriced' errors and unstuck your pending transactions.",
		},
		{
			Slug:               "metamask-high-gas-fees",
			RawQuery:           "Failed MetaMask Swap Charged me $54 in gas is there anything I can do",
			Intent:             "Recover/Understand lost gas",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"check_gas_refund_eligibility", "view_tx_revert_reason"},
			ProblemContext:     "Gas is paid to miners to attempt the transaction. If it fails, the gas is still consumed. It is generally not refundable.",
			MetaTitle:          "Failed MetaMask Swap Charged High Gas? Can You Refund?",
			MetaDescription:    "Understanding why failed transactions cost gas and how to prevent losing money on gas fees in the future.",
		},
		{
			Slug:               "evm-revert-token-sale",
			RawQuery:           "Transaction reverted by the EVM Pancake swap token sale",
			Intent:             "Debug contract revert",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"audit_token", "check_honeypot"},
			ProblemContext:     "EVM revert usually means the smart contract logic forbade the action (e.g., trading disabled, max wallet limit, or honeypot).",
			MetaTitle:          "Transaction Reverted by EVM on PancakeSwap Token Sale",
			MetaDescription:    "Debug EVM revert errors during token sales. Check for honeypots or contract restrictions.",
		},
		{
			Slug:               "gatetoken-unsupported-pair-low-liquidity",
			RawQuery:           "How can I swap gatetoken (error) unsupported pair, low liquidity",
			Intent:             "Find liquidity path",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"find_alternative_route", "bridge_assets"},
			ProblemContext:     "Unsupported pair means there is no direct liquidity pool. You may need to route through another token (e.g., USDT/ETH).",
			MetaTitle:          "Swap GateToken Error: Unsupported Pair / Low Liquidity",
			MetaDescription:    "How to swap GateToken when facing unsupported pair or low liquidity errors. Find the right routing path.",
		},
		{
			Slug:               "successful-swap-no-token",
			RawQuery:           "Successful swap but didnt received the token in my wallet",
			Intent:             "Import missing token",
			PageType:           PageNetworkTool,
			RecommendedActions: []string{"add_custom_token", "check_explorer"},
			ProblemContext:     "The swap likely worked, but your wallet (MetaMask/Phantom) hasn't imported the token address to display the balance.",
			MetaTitle:          "Successful Swap But Didn't Receive Token? Fix Here",
			MetaDescription:    "Don't panic! Here is how to add the custom token address to your wallet to see your funds.",
		},
		{
			Slug:               "pending-swap-not-on-etherscan",
			RawQuery:           "Pending swap not appearing on Etherscan",
			Intent:             "Locate dropped transaction",
			PageType:           PageNetworkTool,
			RecommendedActions: []string{"refresh_node", "check_mempool"},
			ProblemContext:     "If it's not on Etherscan, the node might not have broadcasted it, or it was dropped from the mempool.",
			MetaTitle:          "Pending Swap Not Appearing on Etherscan? Troubleshooting",
			MetaDescription:    "Why your transaction isn't showing up on Etherscan and what to do about pending swaps.",
		},
		{
			Slug:               "function-selector-not-recognized",
			RawQuery:           "Error: Transaction reverted: function selector was not recognized",
			Intent:             "Fix ABI/Contract mismatch",
			PageType:           PageDeveloperTool,
			RecommendedActions: []string{"verify_abi", "check_proxy_contract"},
			ProblemContext:     "You are calling a function that doesn't exist on the contract, or sending data to a proxy without the implementation set.",
			MetaTitle:          "Error: Transaction Reverted - Function Selector Not Recognized",
			MetaDescription:    "Developer guide to fixing 'function selector was not recognized' errors in smart contract interactions.",
		},
		{
			Slug:               "transaction-reverted-low-slippage",
			RawQuery:           "Transaction reverted due to low slippage",
			Intent:             "Adjust slippage",
			PageType:           PageErrorResolution,
			RecommendedActions: []string{"calculate_optimal_slippage", "auto_slippage"},
			ProblemContext:     "The price moved beyond your allowed limit during execution.",
			MetaTitle:          "Transaction Reverted Due to Low Slippage: Fast Fix",
			MetaDescription:    "Quickly calculate and set the optimal slippage to prevent transaction reverts.",
		},
	}
}
