package shell

const ZshScript = `# gitpr shell integration for zsh

gitpr() {
    # zsh reserves 'status' as a read-only alias of $?, so the exit
    # status lives in 'ret'.
    local signal_file ret target_dir

    # Fresh empty signal file per invocation: no two runs share state,
    # and a crashed run can never leave a stale path behind.
    signal_file=$(mktemp "${TMPDIR:-/tmp}/git-pull-request-chdir.XXXXXX") || return 1

    GITPR_CHDIR_FILE="$signal_file" command gitpr "$@"
    ret=$?

    target_dir=$(cat "$signal_file" 2>/dev/null)
    rm -f "$signal_file"

    if [[ -n "$target_dir" && -d "$target_dir" ]]; then
        cd "$target_dir"
    elif [[ -n "$target_dir" ]]; then
        echo "gitpr: cannot change directory to '$target_dir': no such directory" >&2
    fi

    return $ret
}

# Zsh completion for gitpr
_gitpr_completion() {
    local -a subcommands
    subcommands=(
        'list:List open pull requests'
        'fetch:Fetch a pull request into a local branch'
        'fetch-all:Fetch all open pull requests'
        'close:Close the current pull request'
        'merge:Merge the current pull request branch'
        'open:Open a pull request on github'
        'pull:Pull remote changes into the pull request branch'
        'submit:Send a pull request to your reviewer'
        'update:Update a pull request branch from the default branch'
        'continue-update:Continue an update after fixing conflicts'
        'info:Show open pull request counts per repository'
        'config:Export or import gitpr configuration'
        'shell-init:Generate shell integration code'
        'version:Print version information'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' subcommands
    elif [[ ${words[2]} == "config" ]]; then
        _values 'subcommand' export import
    elif [[ ${words[2]} == "shell-init" ]]; then
        _values 'shell' bash zsh fish
    fi
}

# compdef only exists once compinit has run.
if (( $+functions[compdef] )); then
    compdef _gitpr_completion gitpr
fi
`
